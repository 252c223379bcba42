package storage

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bradykim7/cookbook/internal/models"
)

// NotFound is the position returned by Index when no recipe matches
const NotFound = -1

// RecipeData owns the ordered recipe collection.
//
// Values go in and come out as copies, so callers never hold a reference
// into the collection. Editing follows locate-then-replace: Index, then
// Replace at that position.
type RecipeData struct {
	mu      sync.RWMutex
	recipes []models.Recipe
	log     *zap.Logger
}

// NewRecipeData creates a repository holding the seed recipes in order.
// The seed is accepted as-is; only Add validates.
func NewRecipeData(log *zap.Logger, seed ...models.Recipe) *RecipeData {
	recipes := make([]models.Recipe, 0, len(seed))
	for _, r := range seed {
		recipes = append(recipes, r.Clone())
	}

	d := &RecipeData{
		recipes: recipes,
		log:     log.Named("recipe-data"),
	}
	d.log.Debug("Seeded recipes", zap.Int("count", len(recipes)))
	return d
}

// Recipes returns a snapshot of every recipe in insertion order
func (d *RecipeData) Recipes() []models.Recipe {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.filter(func(models.Recipe) bool { return true })
}

// Len returns the number of recipes
func (d *RecipeData) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.recipes)
}

// RecipesFor returns the recipes of the given category, in order
func (d *RecipeData) RecipesFor(category models.Category) []models.Recipe {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := d.filter(func(r models.Recipe) bool {
		return r.MainInformation.Category == category
	})
	d.log.Debug("Filtered by category",
		zap.String("category", string(category)),
		zap.Int("matches", len(out)))
	return out
}

// FavoriteRecipes returns the recipes marked as favorite, in order.
// It is computed from the current collection on every call.
func (d *RecipeData) FavoriteRecipes() []models.Recipe {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.filter(func(r models.Recipe) bool { return r.IsFavorite })
}

// Add appends the recipe if it is valid and reports whether it did.
// Invalid recipes are dropped without an error.
func (d *RecipeData) Add(recipe models.Recipe) bool {
	if !recipe.IsValid() {
		d.log.Warn("Dropped invalid recipe",
			zap.String("id", recipe.ID.String()),
			zap.String("name", recipe.MainInformation.Name))
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.recipes = append(d.recipes, recipe.Clone())
	d.log.Info("Added recipe",
		zap.String("id", recipe.ID.String()),
		zap.String("name", recipe.MainInformation.Name),
		zap.Int("count", len(d.recipes)))
	return true
}

// Index returns the position of the first recipe with the same ID as
// recipe, or NotFound
func (d *RecipeData) Index(recipe models.Recipe) int {
	return d.IndexByID(recipe.ID)
}

// IndexByID returns the position of the first recipe with the given ID,
// or NotFound
func (d *RecipeData) IndexByID(id uuid.UUID) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.indexLocked(id)
}

// At returns a copy of the recipe at position i
func (d *RecipeData) At(i int) (models.Recipe, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i < 0 || i >= len(d.recipes) {
		return models.Recipe{}, fmt.Errorf("recipe at %d: %w", i, ErrIndexOutOfRange)
	}
	return d.recipes[i].Clone(), nil
}

// Replace swaps the recipe at position i for recipe. The replacement must
// carry the ID of the recipe it replaces. It is not validated, so edits
// may pass through invalid states.
func (d *RecipeData) Replace(i int, recipe models.Recipe) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.replaceLocked(i, recipe)
}

// SetFavorite marks or unmarks the recipe with the given ID
func (d *RecipeData) SetFavorite(id uuid.UUID, favorite bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexLocked(id)
	if i == NotFound {
		return fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}

	updated := d.recipes[i].Clone()
	updated.IsFavorite = favorite
	return d.replaceLocked(i, updated)
}

func (d *RecipeData) indexLocked(id uuid.UUID) int {
	for i, r := range d.recipes {
		if r.ID == id {
			return i
		}
	}
	return NotFound
}

func (d *RecipeData) replaceLocked(i int, recipe models.Recipe) error {
	if i < 0 || i >= len(d.recipes) {
		return fmt.Errorf("replace at %d: %w", i, ErrIndexOutOfRange)
	}
	if d.recipes[i].ID != recipe.ID {
		return fmt.Errorf("replace at %d: %w", i, ErrIDMismatch)
	}

	d.recipes[i] = recipe.Clone()
	d.log.Debug("Replaced recipe",
		zap.Int("index", i),
		zap.String("id", recipe.ID.String()),
		zap.Bool("favorite", recipe.IsFavorite))
	return nil
}

// filter must be called with the lock held
func (d *RecipeData) filter(keep func(models.Recipe) bool) []models.Recipe {
	out := make([]models.Recipe, 0, len(d.recipes))
	for _, r := range d.recipes {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}
