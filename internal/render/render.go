// Package render formats recipes for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bradykim7/cookbook/internal/models"
)

const favoriteMark = "★"

// Theme holds the list colours as hex strings
type Theme struct {
	Foreground string
	Background string
}

// DefaultTheme returns the stock purple-on-lavender palette
func DefaultTheme() Theme {
	return Theme{
		Foreground: "#7677E7",
		Background: "#E4EBFA",
	}
}

// Options are the display settings that affect content
type Options struct {
	HideOptionalDirections bool
}

// Entry is a recipe together with the 1-based position users refer to it by
type Entry struct {
	Position int
	Recipe   models.Recipe
}

// Renderer turns recipes into styled text
type Renderer struct {
	opts     Options
	title    lipgloss.Style
	heading  lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	favorite lipgloss.Style
}

// New creates a renderer whose colour support is detected from w
func New(w io.Writer, theme Theme, opts Options) *Renderer {
	re := lipgloss.NewRenderer(w)
	fg := lipgloss.Color(theme.Foreground)
	bg := lipgloss.Color(theme.Background)

	return &Renderer{
		opts:     opts,
		title:    re.NewStyle().Bold(true).Foreground(fg).Background(bg),
		heading:  re.NewStyle().Bold(true).Foreground(fg),
		text:     re.NewStyle().Foreground(fg),
		muted:    re.NewStyle().Faint(true),
		favorite: re.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

// Recipe renders a full recipe card
func (r *Renderer) Recipe(recipe models.Recipe) string {
	var b strings.Builder
	info := recipe.MainInformation

	b.WriteString(r.title.Render(info.Name))
	if recipe.IsFavorite {
		b.WriteString(" " + r.favorite.Render(favoriteMark))
	}
	b.WriteString("\n")
	b.WriteString(r.muted.Render(fmt.Sprintf("%s · by %s", info.Category, info.Author)))
	b.WriteString("\n")
	if info.Description != "" {
		b.WriteString(r.text.Render(info.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n" + r.heading.Render("Ingredients") + "\n")
	for _, c := range recipe.Ingredients {
		b.WriteString("  • " + r.text.Render(c.Description()) + "\n")
	}

	directions := recipe.Directions
	if r.opts.HideOptionalDirections {
		directions = recipe.RequiredDirections()
	}
	b.WriteString("\n" + r.heading.Render("Directions") + "\n")
	for i, d := range directions {
		line := fmt.Sprintf("%2d. %s", i+1, r.text.Render(d.Description))
		if d.IsOptional {
			line += " " + r.muted.Render("(optional)")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// List renders a numbered recipe list
func (r *Renderer) List(title string, entries []Entry) string {
	var b strings.Builder
	b.WriteString(r.heading.Render(title) + "\n")

	if len(entries) == 0 {
		b.WriteString("  " + r.muted.Render("No recipes") + "\n")
		return b.String()
	}

	for _, e := range entries {
		info := e.Recipe.MainInformation
		line := fmt.Sprintf("%3d. %s %s", e.Position, r.text.Render(info.Name), r.muted.Render("("+string(info.Category)+")"))
		if e.Recipe.IsFavorite {
			line += " " + r.favorite.Render(favoriteMark)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Names renders a titled bullet list of plain names
func (r *Renderer) Names(title string, names []string) string {
	var b strings.Builder
	b.WriteString(r.heading.Render(title) + "\n")
	for _, n := range names {
		b.WriteString("  • " + r.text.Render(n) + "\n")
	}
	return b.String()
}
