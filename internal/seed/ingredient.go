package seed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bradykim7/cookbook/internal/models"
)

// quantity, then the rest: "1 1/2 Cups Flour", "1/2 Lemon", "0.5 Cups Milk"
var ingredientRegex = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d*\.?\d+)\s+(.+)$`)

// ParseComponent turns an ingredient line back into a Component. It reads
// the lines Component.Description writes: "454 Grams Potatoes",
// "1 Tablespoon Butter", "3 Large beets".
func ParseComponent(line string) (models.Component, error) {
	text := strings.Join(strings.Fields(line), " ")
	matches := ingredientRegex.FindStringSubmatch(text)
	if matches == nil {
		return models.Component{}, fmt.Errorf("%q: %w", line, ErrUnparsableIngredient)
	}

	quantity, err := parseQuantity(matches[1])
	if err != nil {
		return models.Component{}, fmt.Errorf("%q: %w", line, err)
	}
	rest := matches[2]

	if unit, err := models.ParseUnit(rest); err == nil && unit != models.UnitNone {
		return models.Component{}, fmt.Errorf("%q: unit without a name: %w", line, ErrUnparsableIngredient)
	}
	if word, name, ok := strings.Cut(rest, " "); ok {
		if unit, err := models.ParseUnit(word); err == nil && unit != models.UnitNone {
			return models.NewComponent(name, quantity, unit), nil
		}
	}

	// Description adds one "s" to unitless names when the quantity is not 1
	name := rest
	if quantity != 1 && len(name) > 1 && strings.HasSuffix(name, "s") {
		name = strings.TrimSuffix(name, "s")
	}
	return models.NewComponent(name, quantity, models.UnitNone), nil
}

func parseQuantity(s string) (float64, error) {
	whole, frac, mixed := strings.Cut(s, " ")
	if !mixed {
		frac = whole
		whole = ""
	}

	var total float64
	if whole != "" {
		n, err := strconv.ParseFloat(whole, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
		}
		total = n
	}

	num, den, isFraction := strings.Cut(frac, "/")
	if !isFraction {
		n, err := strconv.ParseFloat(frac, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
		}
		return total + n, nil
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return total + n/d, nil
}
