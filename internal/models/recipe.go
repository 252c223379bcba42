package models

import (
	"github.com/google/uuid"
)

// Recipe aggregates metadata, ingredients and directions.
// ID is assigned once at construction and identifies the recipe for
// lookups; two recipes with the same content but different IDs are
// different recipes.
type Recipe struct {
	ID              uuid.UUID       `json:"id"`
	MainInformation MainInformation `json:"main_information"`
	Ingredients     []Component     `json:"ingredients"`
	Directions      []Direction     `json:"directions"`
	IsFavorite      bool            `json:"is_favorite"`
}

// NewRecipe creates a recipe with a fresh ID
func NewRecipe(info MainInformation, ingredients []Component, directions []Direction) Recipe {
	return Recipe{
		ID:              uuid.New(),
		MainInformation: info,
		Ingredients:     ingredients,
		Directions:      directions,
	}
}

// NewDraftRecipe returns an empty, invalid recipe for creation flows
func NewDraftRecipe() Recipe {
	return NewRecipe(
		MainInformation{Category: CategoryBreakfast},
		[]Component{},
		[]Direction{},
	)
}

// IsValid reports whether the metadata is valid and the recipe has at
// least one ingredient and one direction
func (r Recipe) IsValid() bool {
	return r.MainInformation.IsValid() && len(r.Ingredients) > 0 && len(r.Directions) > 0
}

// RequiredDirections returns the directions that are not optional, in order
func (r Recipe) RequiredDirections() []Direction {
	out := make([]Direction, 0, len(r.Directions))
	for _, d := range r.Directions {
		if !d.IsOptional {
			out = append(out, d)
		}
	}
	return out
}

// Clone returns a copy that shares no slices with r. The ID is kept.
func (r Recipe) Clone() Recipe {
	c := r
	if r.Ingredients != nil {
		c.Ingredients = make([]Component, len(r.Ingredients))
		copy(c.Ingredients, r.Ingredients)
	}
	if r.Directions != nil {
		c.Directions = make([]Direction, len(r.Directions))
		copy(c.Directions, r.Directions)
	}
	return c
}
