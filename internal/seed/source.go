// Package seed provides the recipe sets a repository starts from.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/bradykim7/cookbook/internal/models"
)

var (
	// ErrNoRecipes is returned when a document holds no recipe markup
	ErrNoRecipes = errors.New("no recipes found")

	// ErrUnparsableIngredient is returned for ingredient lines without a leading quantity
	ErrUnparsableIngredient = errors.New("unparsable ingredient")
)

// Source defines the interface for all seed providers
type Source interface {
	// Load returns the recipes in the order they should be stored
	Load(ctx context.Context) ([]models.Recipe, error)

	// Name returns the name of the source
	Name() string
}

// LoadAll loads every source in turn and concatenates the results
func LoadAll(ctx context.Context, sources ...Source) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, src := range sources {
		recipes, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Name(), err)
		}
		out = append(out, recipes...)
	}
	return out, nil
}
