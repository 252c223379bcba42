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
)

var (
	errNoDraft      = errors.New("no recipe in progress, start one with new or edit")
	errDraftPending = errors.New("a recipe is already in progress, save or cancel it first")
)

func (c *RecipeCommands) newDraft(_ context.Context, w io.Writer, _ []string) error {
	if c.draft != nil {
		return errDraftPending
	}
	draft := models.NewDraftRecipe()
	c.draft, c.editing = &draft, false

	_, err := fmt.Fprintf(w, "Started a new %s recipe\n", draft.MainInformation.Category)
	return err
}

func (c *RecipeCommands) edit(_ context.Context, w io.Writer, args []string) error {
	if c.draft != nil {
		return errDraftPending
	}
	recipe, err := c.recipeAt(args)
	if err != nil {
		return err
	}
	c.draft, c.editing = &recipe, true

	_, err = fmt.Fprintf(w, "Editing %s\n", recipe.MainInformation.Name)
	return err
}

func (c *RecipeCommands) info(_ context.Context, w io.Writer, args []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	if len(args) < 2 {
		return fmt.Errorf("info <field> <value>: %w", errUsage)
	}

	field, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")
	info := &c.draft.MainInformation
	switch field {
	case "name":
		info.Name = value
	case "description":
		info.Description = value
	case "author":
		info.Author = value
	case "category":
		category, err := models.ParseCategory(value)
		if err != nil {
			return err
		}
		info.Category = category
		value = string(category)
	default:
		return fmt.Errorf("unknown field %q: %w", args[0], errUsage)
	}

	_, err := fmt.Fprintf(w, "Set %s to %s\n", field, value)
	return err
}

func (c *RecipeCommands) ingredient(_ context.Context, w io.Writer, args []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	if len(args) < 3 {
		return fmt.Errorf("ingredient <quantity> <unit> <name>: %w", errUsage)
	}

	component := models.NewDraftComponent()
	quantity, err := strconv.ParseFloat(args[0], 64)
	if err != nil || quantity <= 0 {
		return fmt.Errorf("%q is not a quantity", args[0])
	}
	unit, err := models.ParseUnit(args[1])
	if err != nil {
		return err
	}
	component.Quantity = quantity
	component.Unit = unit
	component.Name = strings.Join(args[2:], " ")

	c.draft.Ingredients = append(c.draft.Ingredients, component)
	_, err = fmt.Fprintf(w, "Added ingredient %d: %s\n", len(c.draft.Ingredients), component.Description())
	return err
}

func (c *RecipeCommands) step(_ context.Context, w io.Writer, args []string) error {
	if c.draft == nil {
		return errNoDraft
	}

	direction := models.NewDraftDirection()
	if len(args) > 0 && args[0] == "--optional" {
		direction.IsOptional = true
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("step [--optional] <text>: %w", errUsage)
	}
	direction.Description = strings.Join(args, " ")

	c.draft.Directions = append(c.draft.Directions, direction)
	_, err := fmt.Fprintf(w, "Added step %d\n", len(c.draft.Directions))
	return err
}

func (c *RecipeCommands) remove(_ context.Context, w io.Writer, args []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	if len(args) != 2 {
		return fmt.Errorf("remove <ingredient|step> <n>: %w", errUsage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%q is not a number", args[1])
	}

	switch strings.ToLower(args[0]) {
	case "ingredient":
		if n < 1 || n > len(c.draft.Ingredients) {
			return fmt.Errorf("no ingredient %d", n)
		}
		c.draft.Ingredients = append(c.draft.Ingredients[:n-1], c.draft.Ingredients[n:]...)
	case "step":
		if n < 1 || n > len(c.draft.Directions) {
			return fmt.Errorf("no step %d", n)
		}
		c.draft.Directions = append(c.draft.Directions[:n-1], c.draft.Directions[n:]...)
	default:
		return fmt.Errorf("remove <ingredient|step> <n>: %w", errUsage)
	}

	_, err = fmt.Fprintf(w, "Removed %s %d\n", strings.ToLower(args[0]), n)
	return err
}

func (c *RecipeCommands) showDraft(_ context.Context, w io.Writer, _ []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	_, err := io.WriteString(w, c.view.Recipe(*c.draft))
	return err
}

// save adds a new draft through Add, which drops incomplete recipes, or
// writes an edited recipe back over the stored one with the same ID
func (c *RecipeCommands) save(_ context.Context, w io.Writer, _ []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	draft := *c.draft

	if c.editing {
		if !draft.IsValid() {
			return errors.New("recipe needs a name, description, author, an ingredient and a step before saving")
		}
		i := c.data.IndexByID(draft.ID)
		if current, err := c.data.At(i); err == nil {
			// fav/unfav while editing wins over the snapshot taken by edit
			draft.IsFavorite = current.IsFavorite
		}
		if err := c.data.Replace(i, draft); err != nil {
			return err
		}
		c.draft = nil
		_, err := fmt.Fprintf(w, "Saved recipe %d: %s\n", i+1, draft.MainInformation.Name)
		return err
	}

	c.draft = nil
	if !c.data.Add(draft) {
		c.log.Info("Discarded incomplete draft", zap.String("name", draft.MainInformation.Name))
		_, err := fmt.Fprintln(w, "Recipe was incomplete and has been discarded")
		return err
	}
	_, err := fmt.Fprintf(w, "Saved recipe %d: %s\n", c.data.Len(), draft.MainInformation.Name)
	return err
}

func (c *RecipeCommands) cancel(_ context.Context, w io.Writer, _ []string) error {
	if c.draft == nil {
		return errNoDraft
	}
	c.draft = nil
	_, err := fmt.Fprintln(w, "Discarded the draft")
	return err
}
