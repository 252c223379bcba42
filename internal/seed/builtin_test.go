package seed

import (
	"context"
	"testing"

	"github.com/bradykim7/cookbook/internal/models"
)

func TestBuiltinRecipesAreValid(t *testing.T) {
	recipes := Builtin()
	if len(recipes) != 13 {
		t.Fatalf("expected 13 recipes, got %d", len(recipes))
	}
	for _, r := range recipes {
		if !r.IsValid() {
			t.Errorf("%q is not valid", r.MainInformation.Name)
		}
		if r.IsFavorite {
			t.Errorf("%q should not start as a favorite", r.MainInformation.Name)
		}
	}
}

func TestBuiltinCategories(t *testing.T) {
	counts := map[models.Category]int{}
	for _, r := range Builtin() {
		counts[r.MainInformation.Category]++
	}

	want := map[models.Category]int{
		models.CategoryBreakfast: 2,
		models.CategoryLunch:     2,
		models.CategoryDinner:    6,
		models.CategoryDessert:   3,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("%s: expected %d recipes, got %d", c, n, counts[c])
		}
	}
}

func TestBuiltinFreshIDs(t *testing.T) {
	a := Builtin()
	b := Builtin()

	seen := map[string]bool{}
	for _, r := range append(a, b...) {
		id := r.ID.String()
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestBuiltinIngredientDescriptions(t *testing.T) {
	potatoes := Builtin()[0]
	want := []string{
		"454 Grams Potatoes ",
		"1 Tablespoon Butter",
		"0.5 Cups Milk ",
		"2 Teaspoons Salt ",
	}
	for i, w := range want {
		if got := potatoes.Ingredients[i].Description(); got != w {
			t.Errorf("ingredient %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestBuiltinSourceHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (BuiltinSource{}).Load(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
