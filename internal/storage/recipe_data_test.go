package storage

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bradykim7/cookbook/internal/models"
)

func testRecipe(name string, category models.Category) models.Recipe {
	return models.NewRecipe(
		models.MainInformation{
			Name:        name,
			Description: name + " description",
			Author:      "Tester",
			Category:    category,
		},
		[]models.Component{models.NewComponent("Salt", 1, models.UnitTeaspoons)},
		[]models.Direction{models.NewDirection("Cook it", false)},
	)
}

func testData(t *testing.T) (*RecipeData, []models.Recipe) {
	t.Helper()
	seed := []models.Recipe{
		testRecipe("Omelet", models.CategoryBreakfast),
		testRecipe("Chili", models.CategoryLunch),
		testRecipe("Brisket", models.CategoryDinner),
		testRecipe("Brownies", models.CategoryDessert),
		testRecipe("Scampi", models.CategoryDinner),
		testRecipe("Granola", models.CategoryBreakfast),
	}
	return NewRecipeData(zap.NewNop(), seed...), seed
}

func names(recipes []models.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.MainInformation.Name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecipesKeepsSeedOrder(t *testing.T) {
	data, seed := testData(t)

	got := data.Recipes()
	if !equalNames(names(got), names(seed)) {
		t.Fatalf("expected %v, got %v", names(seed), names(got))
	}
	if data.Len() != len(seed) {
		t.Fatalf("expected %d recipes, got %d", len(seed), data.Len())
	}
}

func TestSeedIsNotValidated(t *testing.T) {
	data := NewRecipeData(zap.NewNop(), models.NewDraftRecipe())
	if data.Len() != 1 {
		t.Fatalf("expected the invalid seed recipe to be kept, got %d recipes", data.Len())
	}
}

func TestRecipesFor(t *testing.T) {
	data, _ := testData(t)

	tests := []struct {
		category models.Category
		want     []string
	}{
		{models.CategoryBreakfast, []string{"Omelet", "Granola"}},
		{models.CategoryLunch, []string{"Chili"}},
		{models.CategoryDinner, []string{"Brisket", "Scampi"}},
		{models.CategoryDessert, []string{"Brownies"}},
		{models.Category("Brunch"), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := data.RecipesFor(tt.category)
			if !equalNames(names(got), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, names(got))
			}
			for _, r := range got {
				if r.MainInformation.Category != tt.category {
					t.Fatalf("%s has category %s", r.MainInformation.Name, r.MainInformation.Category)
				}
			}
		})
	}
}

func TestRecipesForPartitionsCollection(t *testing.T) {
	data, seed := testData(t)

	total := 0
	for _, c := range models.AllCategories() {
		total += len(data.RecipesFor(c))
	}
	if total != len(seed) {
		t.Fatalf("categories cover %d recipes, expected %d", total, len(seed))
	}
}

func TestFavoriteRecipesReflectsCurrentState(t *testing.T) {
	data, seed := testData(t)

	if got := data.FavoriteRecipes(); len(got) != 0 {
		t.Fatalf("expected no favorites, got %v", names(got))
	}

	if err := data.SetFavorite(seed[4].ID, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}
	if err := data.SetFavorite(seed[1].ID, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}
	if got := names(data.FavoriteRecipes()); !equalNames(got, []string{"Chili", "Scampi"}) {
		t.Fatalf("expected favorites in collection order, got %v", got)
	}

	if err := data.SetFavorite(seed[1].ID, false); err != nil {
		t.Fatalf("unset favorite: %v", err)
	}
	if got := names(data.FavoriteRecipes()); !equalNames(got, []string{"Scampi"}) {
		t.Fatalf("expected only Scampi, got %v", got)
	}
}

func TestSetFavoriteUnknownID(t *testing.T) {
	data, _ := testData(t)

	err := data.SetFavorite(uuid.New(), true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	data, seed := testData(t)

	valid := testRecipe("Banana Bread", models.CategoryDessert)
	if !data.Add(valid) {
		t.Fatal("valid recipe was rejected")
	}
	if data.Len() != len(seed)+1 {
		t.Fatalf("expected %d recipes, got %d", len(seed)+1, data.Len())
	}
	last, err := data.At(data.Len() - 1)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if last.ID != valid.ID || last.MainInformation != valid.MainInformation {
		t.Fatalf("last recipe is %+v, expected the added one", last.MainInformation)
	}
}

func TestAddDropsInvalidRecipes(t *testing.T) {
	noDirections := testRecipe("Toast", models.CategoryBreakfast)
	noDirections.Directions = nil

	noIngredients := testRecipe("Water", models.CategoryLunch)
	noIngredients.Ingredients = nil

	noAuthor := testRecipe("Soup", models.CategoryDinner)
	noAuthor.MainInformation.Author = ""

	tests := []struct {
		name   string
		recipe models.Recipe
	}{
		{"draft", models.NewDraftRecipe()},
		{"no directions", noDirections},
		{"no ingredients", noIngredients},
		{"no author", noAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, seed := testData(t)
			if data.Add(tt.recipe) {
				t.Fatal("invalid recipe was accepted")
			}
			if !equalNames(names(data.Recipes()), names(seed)) {
				t.Fatalf("collection changed: %v", names(data.Recipes()))
			}
		})
	}
}

func TestIndex(t *testing.T) {
	data, seed := testData(t)

	for i, r := range seed {
		if got := data.Index(r); got != i {
			t.Errorf("%s: expected index %d, got %d", r.MainInformation.Name, i, got)
		}
	}

	lookalike := seed[2]
	lookalike.ID = uuid.New()
	if got := data.Index(lookalike); got != NotFound {
		t.Fatalf("same content with a new ID must not match, got %d", got)
	}
}

func TestReplace(t *testing.T) {
	data, seed := testData(t)

	i := data.Index(seed[2])
	edited, err := data.At(i)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	edited.MainInformation.Name = "Braised Brisket"
	edited.Ingredients = append(edited.Ingredients, models.NewComponent("Red Wine", 1, models.UnitCups))

	if err := data.Replace(i, edited); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, _ := data.At(i)
	if got.ID != seed[2].ID {
		t.Fatal("replace changed the ID")
	}
	if got.MainInformation.Name != "Braised Brisket" || len(got.Ingredients) != 2 {
		t.Fatalf("replacement not stored: %+v", got)
	}
	if data.Len() != len(seed) {
		t.Fatalf("replace changed the length to %d", data.Len())
	}
}

func TestReplaceErrors(t *testing.T) {
	data, seed := testData(t)

	if err := data.Replace(len(seed), seed[0]); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := data.Replace(-1, seed[0]); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := data.Replace(0, seed[1]); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("expected ErrIDMismatch, got %v", err)
	}
	if _, err := data.At(99); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestReturnedRecipesDoNotAlias(t *testing.T) {
	data, _ := testData(t)

	out := data.Recipes()
	out[0].Ingredients[0].Name = "Pepper"
	out[0].MainInformation.Name = "Changed"

	again, _ := data.At(0)
	if again.Ingredients[0].Name != "Salt" || again.MainInformation.Name != "Omelet" {
		t.Fatal("mutating a returned recipe changed the collection")
	}
}

func TestAddedRecipeDoesNotAlias(t *testing.T) {
	data, _ := testData(t)

	r := testRecipe("Pancakes", models.CategoryBreakfast)
	data.Add(r)
	r.Ingredients[0].Name = "Sugar"

	got, _ := data.At(data.Index(r))
	if got.Ingredients[0].Name != "Salt" {
		t.Fatal("caller still shares the added recipe's slices")
	}
}

func TestConcurrentAccess(t *testing.T) {
	data, _ := testData(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			data.Add(testRecipe("Pie", models.CategoryDessert))
		}()
		go func() {
			defer wg.Done()
			_ = data.RecipesFor(models.CategoryDessert)
			_ = data.FavoriteRecipes()
		}()
	}
	wg.Wait()

	if got := len(data.RecipesFor(models.CategoryDessert)); got != 21 {
		t.Fatalf("expected 21 desserts, got %d", got)
	}
}
