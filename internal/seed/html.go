package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/bradykim7/cookbook/internal/models"
)

const recipeSelector = `[itemtype$="schema.org/Recipe"]`

// HTMLSource reads recipes from schema.org Recipe microdata in a local
// HTML document
type HTMLSource struct {
	path string
	log  *zap.Logger
}

// NewHTMLSource creates a source for the HTML file at path
func NewHTMLSource(path string, log *zap.Logger) *HTMLSource {
	return &HTMLSource{
		path: path,
		log:  log.Named("html-source"),
	}
}

// Name returns the name of the source
func (s *HTMLSource) Name() string {
	return "html:" + s.path
}

// Load opens the file and parses every recipe in it
func (s *HTMLSource) Load(ctx context.Context) ([]models.Recipe, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	return s.Parse(ctx, f)
}

// Parse extracts recipes from an HTML document. Recipes are returned
// whether or not they are valid; ingredient lines that cannot be read are
// skipped.
func (s *HTMLSource) Parse(ctx context.Context, r io.Reader) ([]models.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	items := doc.Find(recipeSelector)
	if items.Length() == 0 {
		return nil, ErrNoRecipes
	}

	var recipes []models.Recipe
	var ctxErr error
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			return false
		}
		recipes = append(recipes, s.parseRecipe(item))
		return true
	})
	if ctxErr != nil {
		return nil, ctxErr
	}

	s.log.Info("HTML import completed", zap.Int("recipes_found", len(recipes)))
	return recipes, nil
}

// parseRecipe extracts one recipe from its itemscope element
func (s *HTMLSource) parseRecipe(item *goquery.Selection) models.Recipe {
	info := models.MainInformation{
		Name:        propText(ownProps(item, "name").First()),
		Description: propText(ownProps(item, "description").First()),
		Author:      authorName(ownProps(item, "author").First()),
		Category:    models.CategoryBreakfast,
	}

	if raw := propText(ownProps(item, "recipeCategory").First()); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			s.log.Warn("Unknown category, using default",
				zap.String("recipe", info.Name),
				zap.String("category", raw))
		} else {
			info.Category = category
		}
	}

	ingredients := []models.Component{}
	ownProps(item, "recipeIngredient").Each(func(_ int, el *goquery.Selection) {
		line := propText(el)
		c, err := ParseComponent(line)
		if err != nil {
			s.log.Warn("Skipping ingredient", zap.String("recipe", info.Name), zap.Error(err))
			return
		}
		ingredients = append(ingredients, c)
	})

	directions := []models.Direction{}
	ownProps(item, "recipeInstructions").Each(func(_ int, el *goquery.Selection) {
		directions = append(directions, parseSteps(el)...)
	})

	return models.NewRecipe(info, ingredients, directions)
}

// parseSteps reads a recipeInstructions element. A plain list yields one
// step per outer item, nested lists stay part of their item; anything else
// is a single step.
func parseSteps(el *goquery.Selection) []models.Direction {
	if _, scoped := el.Attr("itemscope"); !scoped {
		items := el.Find("li").FilterFunction(func(_ int, li *goquery.Selection) bool {
			return li.ParentsUntilSelection(el).Filter("li").Length() == 0
		})
		if items.Length() > 0 {
			var out []models.Direction
			items.Each(func(_ int, li *goquery.Selection) {
				if text := propText(li); text != "" {
					out = append(out, models.NewDirection(text, isOptional(li)))
				}
			})
			return out
		}
	}

	text := propText(el)
	if nested := el.Find(`[itemprop="text"]`).First(); nested.Length() > 0 {
		text = propText(nested)
	}
	if text == "" {
		return nil
	}
	return []models.Direction{models.NewDirection(text, isOptional(el))}
}

// ownProps finds itemprop elements that belong to item itself and not to
// a nested itemscope
func ownProps(item *goquery.Selection, prop string) *goquery.Selection {
	return item.Find(fmt.Sprintf(`[itemprop="%s"]`, prop)).FilterFunction(func(_ int, el *goquery.Selection) bool {
		return el.ParentsFiltered("[itemscope]").First().IsSelection(item)
	})
}

func authorName(el *goquery.Selection) string {
	if el.Length() == 0 {
		return ""
	}
	if _, scoped := el.Attr("itemscope"); scoped {
		if name := el.Find(`[itemprop="name"]`).First(); name.Length() > 0 {
			return propText(name)
		}
	}
	return propText(el)
}

// propText prefers the content attribute used by <meta> microdata
func propText(el *goquery.Selection) string {
	if el.Length() == 0 {
		return ""
	}
	if content, ok := el.Attr("content"); ok {
		return strings.Join(strings.Fields(content), " ")
	}
	return strings.Join(strings.Fields(nodeText(el)), " ")
}

// nodeText concatenates the text of el with a space between child nodes,
// so "Mix<ul><li>slowly</li></ul>" reads "Mix slowly"
func nodeText(el *goquery.Selection) string {
	var parts []string
	el.Contents().Each(func(_ int, node *goquery.Selection) {
		switch goquery.NodeName(node) {
		case "#text":
			parts = append(parts, node.Text())
		case "#comment", "script", "style":
		default:
			parts = append(parts, nodeText(node))
		}
	})
	return strings.Join(parts, " ")
}

func isOptional(el *goquery.Selection) bool {
	v, _ := el.Attr("data-optional")
	return strings.EqualFold(v, "true")
}
