package models

import (
	"fmt"
	"strings"
)

// Unit is a measurement unit. Its value is the plural display name.
type Unit string

const (
	UnitOunces      Unit = "Ounces"
	UnitGrams       Unit = "Grams"
	UnitCups        Unit = "Cups"
	UnitTablespoons Unit = "Tablespoons"
	UnitTeaspoons   Unit = "Teaspoons"
	UnitNone        Unit = "No units"
)

// AllUnits returns every unit in picker order
func AllUnits() []Unit {
	return []Unit{UnitOunces, UnitGrams, UnitCups, UnitTablespoons, UnitTeaspoons, UnitNone}
}

// DisplayName returns the plural display form
func (u Unit) DisplayName() string {
	return string(u)
}

// SingularName drops the last character of the display name.
// "Ounces" becomes "Ounce" and "No units" becomes "No unit".
func (u Unit) SingularName() string {
	name := u.DisplayName()
	if name == "" {
		return ""
	}
	return name[:len(name)-1]
}

func (u Unit) String() string {
	return u.DisplayName()
}

var unitAliases = map[string]Unit{
	"oz":   UnitOunces,
	"g":    UnitGrams,
	"gram": UnitGrams,
	"cup":  UnitCups,
	"tbs":  UnitTablespoons,
	"tbsp": UnitTablespoons,
	"tsp":  UnitTeaspoons,
	"":     UnitNone,
	"none": UnitNone,
}

// ParseUnit accepts display names, singular names and the usual kitchen
// abbreviations, ignoring case
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, u := range AllUnits() {
		if name == strings.ToLower(u.DisplayName()) || name == strings.ToLower(u.SingularName()) {
			return u, nil
		}
	}
	if u, ok := unitAliases[name]; ok {
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}
