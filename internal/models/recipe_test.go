package models

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func validInformation() MainInformation {
	return MainInformation{
		Name:        "Granola Bowl",
		Description: "A dense and delicious breakfast",
		Author:      "Ben",
		Category:    CategoryBreakfast,
	}
}

func TestMainInformationIsValid(t *testing.T) {
	tests := []struct {
		name string
		edit func(*MainInformation)
		want bool
	}{
		{"complete", func(*MainInformation) {}, true},
		{"missing name", func(m *MainInformation) { m.Name = "" }, false},
		{"missing description", func(m *MainInformation) { m.Description = "" }, false},
		{"missing author", func(m *MainInformation) { m.Author = "" }, false},
		{"category does not matter", func(m *MainInformation) { m.Category = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInformation()
			tt.edit(&info)
			if got := info.IsValid(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecipeIsValid(t *testing.T) {
	ingredients := []Component{NewComponent("Banana", 1, UnitNone)}
	directions := []Direction{NewDirection("Slice the banana", false)}

	tests := []struct {
		name   string
		recipe Recipe
		want   bool
	}{
		{"complete", NewRecipe(validInformation(), ingredients, directions), true},
		{"invalid metadata", NewRecipe(MainInformation{Name: "x"}, ingredients, directions), false},
		{"no ingredients", NewRecipe(validInformation(), nil, directions), false},
		{"no directions", NewRecipe(validInformation(), ingredients, []Direction{}), false},
		{"draft", NewDraftRecipe(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recipe.IsValid(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewRecipeKeepsFields(t *testing.T) {
	info := validInformation()
	ingredients := []Component{
		NewComponent("Granola", 0.5, UnitCups),
		NewComponent("Banana", 1, UnitNone),
	}
	directions := []Direction{
		NewDirection("Slice the banana", false),
		NewDirection("Add chocolate chips", true),
	}

	r := NewRecipe(info, ingredients, directions)
	if r.ID == uuid.Nil {
		t.Fatal("expected a generated ID")
	}
	if r.MainInformation != info {
		t.Errorf("main information changed: %+v", r.MainInformation)
	}
	if !reflect.DeepEqual(r.Ingredients, ingredients) {
		t.Errorf("ingredients changed: %+v", r.Ingredients)
	}
	if !reflect.DeepEqual(r.Directions, directions) {
		t.Errorf("directions changed: %+v", r.Directions)
	}
	if r.IsFavorite {
		t.Error("new recipes should not be favorites")
	}
}

func TestNewRecipeGeneratesDistinctIDs(t *testing.T) {
	a := NewRecipe(validInformation(), nil, nil)
	b := NewRecipe(validInformation(), nil, nil)
	if a.ID == b.ID {
		t.Fatal("structurally equal recipes must still get distinct IDs")
	}
}

func TestDraftRecipe(t *testing.T) {
	r := NewDraftRecipe()
	if r.MainInformation.Category != CategoryBreakfast {
		t.Errorf("expected breakfast, got %s", r.MainInformation.Category)
	}
	if len(r.Ingredients) != 0 || len(r.Directions) != 0 {
		t.Error("draft should have empty lists")
	}
	if d := NewDraftDirection(); d.Description != "" || d.IsOptional {
		t.Errorf("unexpected draft direction %+v", d)
	}
}

func TestRecipeEditKeepsID(t *testing.T) {
	r := NewDraftRecipe()
	id := r.ID

	r.MainInformation = validInformation()
	r.Ingredients = append(r.Ingredients, NewComponent("Banana", 1, UnitNone))
	r.Directions = append(r.Directions, NewDirection("Slice the banana", false))

	if r.ID != id {
		t.Fatal("editing must not change the ID")
	}
	if !r.IsValid() {
		t.Fatal("edited draft should now be valid")
	}
}

func TestRecipeCloneDoesNotAlias(t *testing.T) {
	r := NewRecipe(validInformation(),
		[]Component{NewComponent("Banana", 1, UnitNone)},
		[]Direction{NewDirection("Slice the banana", false)})

	c := r.Clone()
	c.Ingredients[0].Name = "Apple"
	c.Directions[0].IsOptional = true

	if c.ID != r.ID {
		t.Error("clone must keep the ID")
	}
	if r.Ingredients[0].Name != "Banana" || r.Directions[0].IsOptional {
		t.Error("clone shares slices with the original")
	}
}

func TestRequiredDirections(t *testing.T) {
	r := NewRecipe(validInformation(), nil, []Direction{
		NewDirection("Slice", false),
		NewDirection("Garnish", true),
		NewDirection("Serve", false),
	})

	got := r.RequiredDirections()
	if len(got) != 2 || got[0].Description != "Slice" || got[1].Description != "Serve" {
		t.Fatalf("unexpected required directions: %+v", got)
	}
	if len(r.Directions) != 3 {
		t.Fatal("RequiredDirections must not modify the recipe")
	}
}
