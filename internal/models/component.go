package models

import (
	"fmt"
	"strconv"
)

// Component is a single ingredient line of a recipe
type Component struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

// NewComponent creates an ingredient
func NewComponent(name string, quantity float64, unit Unit) Component {
	return Component{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
}

// NewDraftComponent returns the blank ingredient used by editing flows
func NewDraftComponent() Component {
	return NewComponent("", 1, UnitNone)
}

// Description formats the ingredient for display.
//
// Without a unit the name gets a trailing "s" unless the quantity is 1.
// With a unit, a quantity of 1 uses the singular unit name; any other
// quantity uses the plural name and ends in a space.
func (c Component) Description() string {
	quantity := FormatQuantity(c.Quantity)
	if c.Unit == UnitNone {
		name := c.Name
		if c.Quantity != 1 {
			name += "s"
		}
		return fmt.Sprintf("%s %s", quantity, name)
	}
	if c.Quantity == 1 {
		return fmt.Sprintf("1 %s %s", c.Unit.SingularName(), c.Name)
	}
	return fmt.Sprintf("%s %s %s ", quantity, c.Unit.DisplayName(), c.Name)
}

func (c Component) String() string {
	return c.Description()
}

// FormatQuantity renders a quantity with up to six significant digits and
// no trailing zeros: 1 -> "1", 0.5 -> "0.5", 1815 -> "1815".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'g', 6, 64)
}
