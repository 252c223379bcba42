package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bradykim7/cookbook/internal/models"
	"github.com/bradykim7/cookbook/internal/render"
	"github.com/bradykim7/cookbook/internal/seed"
	"github.com/bradykim7/cookbook/internal/storage"
)

var errUsage = errors.New("wrong arguments")

// RecipeCommands handles the recipe commands
type RecipeCommands struct {
	data *storage.RecipeData
	view *render.Renderer
	log  *zap.Logger

	// draft is the recipe being created or edited, nil when idle
	draft   *models.Recipe
	editing bool
}

// NewRecipeCommands creates the recipe command handlers
func NewRecipeCommands(data *storage.RecipeData, view *render.Renderer, log *zap.Logger) *RecipeCommands {
	return &RecipeCommands{
		data: data,
		view: view,
		log:  log.Named("recipe-commands"),
	}
}

// Register registers every recipe command, plus help, on reg
func (c *RecipeCommands) Register(reg *Registry) {
	reg.Register("list", CommandFunc{"list - show every recipe", c.list})
	reg.Register("category", CommandFunc{"category <name> - show the recipes of a category", c.category})
	reg.Register("categories", CommandFunc{"categories - show the categories", c.categories})
	reg.Register("favorites", CommandFunc{"favorites - show favorite recipes", c.favorites})
	reg.Register("show", CommandFunc{"show <n> - show recipe n", c.show})
	reg.Register("fav", CommandFunc{"fav <n> - mark recipe n as favorite", c.setFavorite(true)})
	reg.Register("unfav", CommandFunc{"unfav <n> - unmark recipe n", c.setFavorite(false)})
	reg.Register("new", CommandFunc{"new - start a new recipe", c.newDraft})
	reg.Register("edit", CommandFunc{"edit <n> - start editing recipe n", c.edit})
	reg.Register("info", CommandFunc{"info <name|description|author|category> <value> - set a field of the draft", c.info})
	reg.Register("ingredient", CommandFunc{"ingredient <quantity> <unit> <name> - add an ingredient to the draft", c.ingredient})
	reg.Register("step", CommandFunc{"step [--optional] <text> - add a direction to the draft", c.step})
	reg.Register("remove", CommandFunc{"remove <ingredient|step> <n> - remove an item from the draft", c.remove})
	reg.Register("draft", CommandFunc{"draft - show the draft", c.showDraft})
	reg.Register("save", CommandFunc{"save - store the draft", c.save})
	reg.Register("cancel", CommandFunc{"cancel - discard the draft", c.cancel})
	reg.Register("import", CommandFunc{"import <file> - add the recipes of an HTML page", c.importHTML})
	reg.Register("units", CommandFunc{"units - show the measurement units", c.units})
	reg.Register("help", CommandFunc{"help - show this list", func(_ context.Context, w io.Writer, _ []string) error {
		var lines []string
		for _, name := range reg.Names() {
			cmd, _ := reg.Lookup(name)
			lines = append(lines, cmd.Help())
		}
		_, err := io.WriteString(w, c.view.Names("Commands", lines))
		return err
	}})
}

func (c *RecipeCommands) list(_ context.Context, w io.Writer, _ []string) error {
	recipes := c.data.Recipes()
	entries := make([]render.Entry, len(recipes))
	for i, r := range recipes {
		entries[i] = render.Entry{Position: i + 1, Recipe: r}
	}
	_, err := io.WriteString(w, c.view.List("All recipes", entries))
	return err
}

func (c *RecipeCommands) category(_ context.Context, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("category <name>: %w", errUsage)
	}
	category, err := models.ParseCategory(args[0])
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, c.view.List(string(category)+" recipes", c.entries(c.data.RecipesFor(category))))
	return err
}

func (c *RecipeCommands) categories(_ context.Context, w io.Writer, _ []string) error {
	var names []string
	for _, category := range models.AllCategories() {
		names = append(names, fmt.Sprintf("%s (%d)", category, len(c.data.RecipesFor(category))))
	}
	_, err := io.WriteString(w, c.view.Names("Categories", names))
	return err
}

func (c *RecipeCommands) units(_ context.Context, w io.Writer, _ []string) error {
	var names []string
	for _, u := range models.AllUnits() {
		names = append(names, u.DisplayName())
	}
	_, err := io.WriteString(w, c.view.Names("Units", names))
	return err
}

func (c *RecipeCommands) favorites(_ context.Context, w io.Writer, _ []string) error {
	_, err := io.WriteString(w, c.view.List("Favorites", c.entries(c.data.FavoriteRecipes())))
	return err
}

func (c *RecipeCommands) show(_ context.Context, w io.Writer, args []string) error {
	recipe, err := c.recipeAt(args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, c.view.Recipe(recipe))
	return err
}

func (c *RecipeCommands) setFavorite(favorite bool) func(context.Context, io.Writer, []string) error {
	return func(_ context.Context, w io.Writer, args []string) error {
		recipe, err := c.recipeAt(args)
		if err != nil {
			return err
		}
		if err := c.data.SetFavorite(recipe.ID, favorite); err != nil {
			return err
		}

		verb := "Added to"
		if !favorite {
			verb = "Removed from"
		}
		_, err = fmt.Fprintf(w, "%s favorites: %s\n", verb, recipe.MainInformation.Name)
		return err
	}
}

func (c *RecipeCommands) importHTML(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("import <file>: %w", errUsage)
	}
	path := strings.Join(args, " ")

	recipes, err := seed.NewHTMLSource(path, c.log).Load(ctx)
	if err != nil {
		return err
	}

	added, dropped := 0, 0
	for _, r := range recipes {
		if c.data.Add(r) {
			added++
		} else {
			dropped++
		}
	}

	c.log.Info("Imported recipes",
		zap.String("file", path),
		zap.Int("added", added),
		zap.Int("dropped", dropped))
	_, err = fmt.Fprintf(w, "Imported %d recipe(s), skipped %d incomplete\n", added, dropped)
	return err
}

// recipeAt resolves a 1-based position argument
func (c *RecipeCommands) recipeAt(args []string) (models.Recipe, error) {
	if len(args) != 1 {
		return models.Recipe{}, fmt.Errorf("expected a recipe number: %w", errUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%q is not a recipe number", args[0])
	}
	return c.data.At(n - 1)
}

// entries pairs recipes with their positions in the full list
func (c *RecipeCommands) entries(recipes []models.Recipe) []render.Entry {
	out := make([]render.Entry, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, render.Entry{Position: c.data.Index(r) + 1, Recipe: r})
	}
	return out
}
