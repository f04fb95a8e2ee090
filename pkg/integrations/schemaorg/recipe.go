package schemaorg

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
	"github.com/goccy/go-json"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
)

var ErrNoRecipe = errors.New("no schema.org recipe found")

// RecipeJSON is the part of a schema.org Recipe the importer reads. Author and instructions come
// in several shapes, so they are decoded later.
type RecipeJSON struct {
	Type               json.RawMessage   `json:"@type"`
	Graph              []json.RawMessage `json:"@graph"`
	Name               string            `json:"name"`
	Author             json.RawMessage   `json:"author"`
	RecipeIngredient   []string          `json:"recipeIngredient"`
	RecipeInstructions json.RawMessage   `json:"recipeInstructions"`
}

type instructionJSON struct {
	Type            string            `json:"@type"`
	Text            string            `json:"text"`
	Name            string            `json:"name"`
	ItemListElement []json.RawMessage `json:"itemListElement"`
}

func (s *SchemaOrgIntegration) FindRecipe(pageURL string) (*recipes.Draft, error) {
	collector := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs  error
		found *RecipeJSON
	)

	collector.OnHTML(`script[type="application/ld+json"]`, func(element *colly.HTMLElement) {
		if found != nil {
			return
		}

		recipe, err := findRecipeJSON([]byte(element.Text))
		if multierr.AppendInto(&errs, err) {
			s.logger.Warn("failed to parse JSON-LD block", zap.String("url", pageURL), zap.Error(err))

			return
		}

		found = recipe
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("error while scraping recipe page", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	s.logger.Info("scraping recipe page", zap.String("url", pageURL))

	if err := collector.Visit(pageURL); err != nil {
		return nil, err
	}

	if found == nil {
		return nil, multierr.Append(fmt.Errorf("%w at %s", ErrNoRecipe, pageURL), errs)
	}

	draft := s.draftFromJSON(found)

	s.logger.Info("finished scraping recipe",
		zap.String("name", draft.Name),
		zap.Int("ingredients", len(draft.Lines)),
		zap.Strings("skipped", draft.Skipped))

	return draft, nil
}

// findRecipeJSON looks for a Recipe node in a JSON-LD document, which may be a single node, an
// array of nodes or a node holding an @graph.
func findRecipeJSON(data []byte) (*RecipeJSON, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var nodes []json.RawMessage
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, err
		}

		for _, node := range nodes {
			if recipe, err := findRecipeJSON(node); err == nil && recipe != nil {
				return recipe, nil
			}
		}

		return nil, nil
	}

	var node RecipeJSON
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	if isRecipeType(node.Type) {
		return &node, nil
	}

	for _, child := range node.Graph {
		if recipe, err := findRecipeJSON(child); err == nil && recipe != nil {
			return recipe, nil
		}
	}

	return nil, nil
}

func isRecipeType(raw json.RawMessage) bool {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single == "Recipe"
	}

	var several []string
	if err := json.Unmarshal(raw, &several); err == nil {
		for _, t := range several {
			if t == "Recipe" {
				return true
			}
		}
	}

	return false
}

func (s *SchemaOrgIntegration) draftFromJSON(recipe *RecipeJSON) *recipes.Draft {
	draft := recipes.Draft{Name: strings.TrimSpace(recipe.Name)}

	if author := authorName(recipe.Author); author != "" {
		draft.Attrs.Author = pointy.String(author)
	}

	if method := instructions(recipe.RecipeInstructions); method != "" {
		draft.Attrs.Method = pointy.String(method)
	}

	seen := make(map[int64]bool, len(recipe.RecipeIngredient))

	for _, text := range recipe.RecipeIngredient {
		line, ok := ParseIngredient(text)
		if !ok || seen[identity.Derive(*line.Name)] {
			s.logger.Debug("skipping ingredient", zap.String("text", text))
			draft.Skipped = append(draft.Skipped, text)

			continue
		}

		seen[identity.Derive(*line.Name)] = true
		draft.Lines = append(draft.Lines, line)
	}

	return &draft
}

func authorName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return strings.TrimSpace(name)
	}

	var person struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &person); err == nil {
		return strings.TrimSpace(person.Name)
	}

	var people []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &people); err == nil {
		names := make([]string, 0, len(people))

		for _, p := range people {
			if p.Name != "" {
				names = append(names, strings.TrimSpace(p.Name))
			}
		}

		return strings.Join(names, ", ")
	}

	return ""
}

// instructions flattens recipeInstructions, which is text, a list of text, HowToSteps, or
// HowToSections of HowToSteps, into one step per line.
func instructions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	steps := make([]string, 0, len(items))

	for _, item := range items {
		var step instructionJSON
		if err := json.Unmarshal(item, &step); err != nil {
			if text := instructions(item); text != "" {
				steps = append(steps, text)
			}

			continue
		}

		switch {
		case step.Type == "HowToSection":
			for _, element := range step.ItemListElement {
				if text := instructions(json.RawMessage(`[` + string(element) + `]`)); text != "" {
					steps = append(steps, text)
				}
			}
		case step.Text != "":
			steps = append(steps, strings.TrimSpace(step.Text))
		case step.Name != "":
			steps = append(steps, strings.TrimSpace(step.Name))
		}
	}

	return strings.Join(steps, "\n")
}
