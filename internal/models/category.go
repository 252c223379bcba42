package models

import (
	"fmt"
	"strings"
)

// Category is the meal-time classification used to group recipes
type Category string

const (
	// CategoryBreakfast groups breakfast recipes
	CategoryBreakfast Category = "Breakfast"

	// CategoryLunch groups lunch recipes
	CategoryLunch Category = "Lunch"

	// CategoryDinner groups dinner recipes
	CategoryDinner Category = "Dinner"

	// CategoryDessert groups desserts
	CategoryDessert Category = "Dessert"
)

// AllCategories returns every category in display order
func AllCategories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert}
}

// ParseCategory maps a case-insensitive category name to a Category
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range AllCategories() {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string {
	return string(c)
}
