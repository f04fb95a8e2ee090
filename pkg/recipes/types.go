package recipes

import (
	"time"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

// RecipeAttrs carries the top-level recipe fields of a request. Nil fields are left untouched.
type RecipeAttrs struct {
	Name   *string `json:"name"   validate:"omitnil,identity"`
	Method *string `json:"method"`
	Author *string `json:"author"`
	Book   *string `json:"book"`
}

// IngredientLine is one desired recipe-ingredient association.
type IngredientLine struct {
	Name          *string  `json:"name"            validate:"required,identity"`
	UnitOfMeasure *string  `json:"unit_of_measure"`
	Quantity      *float64 `json:"quantity"        validate:"omitnil,gt=0"`
	Delete        bool     `json:"delete"`
}

// Draft is a recipe put together outside a request, e.g. by an importer, ready for Create.
type Draft struct {
	Name    string
	Attrs   RecipeAttrs
	Lines   []IngredientLine
	Skipped []string
}

type RecipeSummary struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Method    string    `json:"method"`
	Author    string    `json:"author"`
	Book      string    `json:"book"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LineView struct {
	Ingredient    string  `json:"ingredient"`
	Quantity      float64 `json:"quantity"`
	UnitOfMeasure string  `json:"unit_of_measure"`
}

type RecipeView struct {
	RecipeSummary
	Ingredients []LineView `json:"ingredients"`
}

type DeleteResult struct {
	Name               string `json:"name"`
	RemovedIngredients int64  `json:"removed_ingredients"`
}

func summaryFromModel(recipe *model.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:        recipe.ID,
		Name:      recipe.Name,
		Method:    recipe.Method,
		Author:    recipe.Author,
		Book:      recipe.Book,
		CreatedAt: recipe.CreatedAt,
		UpdatedAt: recipe.UpdatedAt,
	}
}

func summariesFromModel(recipes []*model.Recipe) []RecipeSummary {
	summaries := make([]RecipeSummary, 0, len(recipes))

	for _, recipe := range recipes {
		summaries = append(summaries, summaryFromModel(recipe))
	}

	return summaries
}

func viewFromModel(recipe *model.Recipe) *RecipeView {
	view := RecipeView{RecipeSummary: summaryFromModel(recipe), Ingredients: make([]LineView, 0, len(recipe.Ingredients))}

	for _, entry := range recipe.Ingredients {
		view.Ingredients = append(view.Ingredients, LineView{
			Ingredient:    entry.Ingredient.Name,
			Quantity:      entry.Quantity,
			UnitOfMeasure: entry.UnitOfMeasure,
		})
	}

	return &view
}
