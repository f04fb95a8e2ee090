package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

type RecipeRepository interface { //nolint:interfacebloat // one store for the whole recipe graph
	Transaction(ctx context.Context, fn func(tx RecipeRepository) error) error

	AddRecipe(ctx context.Context, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, recipeID int64) (int64, error)
	GetRecipe(ctx context.Context, recipeID int64) (*model.Recipe, error)
	GetRecipeWithIngredients(ctx context.Context, recipeID int64) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	RenameRecipe(ctx context.Context, recipeID int64, newID int64, name string) error
	UpdateRecipeFields(ctx context.Context, recipeID int64, fields map[string]any) error

	AddIngredient(ctx context.Context, ingredient *model.Ingredient) error
	GetIngredient(ctx context.Context, ingredientID int64) (*model.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*model.Ingredient, error)

	AddRecipeIngredient(ctx context.Context, entry *model.RecipeIngredient) error
	DeleteRecipeIngredient(ctx context.Context, recipeID int64, ingredientID int64) (int64, error)
	DeleteRecipeIngredients(ctx context.Context, recipeID int64) (int64, error)
	FindRecipesByIngredient(ctx context.Context, ingredientID int64) ([]*model.Recipe, error)
	GetRecipeIngredient(ctx context.Context, recipeID int64, ingredientID int64) (*model.RecipeIngredient, error)
	UpdateRecipeIngredientFields(ctx context.Context, recipeID int64, ingredientID int64, fields map[string]any) error

	GetUnit(ctx context.Context, name string) (*model.UnitOfMeasure, error)
	ListConversions(ctx context.Context, from string) ([]*model.UnitConversion, error)
	ListUnits(ctx context.Context) ([]*model.UnitOfMeasure, error)
}

func (r *Repository) AddRecipe(ctx context.Context, recipe *model.Recipe) error {
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(recipe)

	return translateError(result.Error)
}

func (r *Repository) GetRecipe(ctx context.Context, recipeID int64) (*model.Recipe, error) {
	var recipe model.Recipe

	if result := r.DB.WithContext(ctx).First(&recipe, recipeID); result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &recipe, nil
}

func (r *Repository) GetRecipeWithIngredients(ctx context.Context, recipeID int64) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.ingredient_id ASC") }).
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &recipe, nil
}

func (r *Repository) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	if result := r.DB.WithContext(ctx).Order("name").Find(&recipes); result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Error(result.Error))

		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) UpdateRecipeFields(ctx context.Context, recipeID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Model(&model.Recipe{ID: recipeID}).Updates(fields)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// RenameRecipe moves a recipe and its association rows to a new identifier. Callers run it inside
// a transaction.
func (r *Repository) RenameRecipe(ctx context.Context, recipeID int64, newID int64, name string) error {
	recipe, err := r.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if recipeID == newID {
		return r.UpdateRecipeFields(ctx, recipeID, map[string]any{"name": name})
	}

	// free the unique name before the copy claims it
	placeholder := fmt.Sprintf("%s#%d", recipe.Name, recipeID)
	if err = r.UpdateRecipeFields(ctx, recipeID, map[string]any{"name": placeholder}); err != nil {
		return err
	}

	renamed := *recipe
	renamed.ID = newID
	renamed.Name = name
	renamed.UpdatedAt = time.Time{}
	renamed.Ingredients = nil

	if err = r.AddRecipe(ctx, &renamed); err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Model(&model.RecipeIngredient{}).
		Where("recipe_id = ?", recipeID).
		Update("recipe_id", newID)
	if result.Error != nil {
		return translateError(result.Error)
	}

	_, err = r.DeleteRecipe(ctx, recipeID)

	return err
}

func (r *Repository) DeleteRecipe(ctx context.Context, recipeID int64) (int64, error) {
	result := r.DB.WithContext(ctx).Delete(&model.Recipe{}, recipeID)

	return result.RowsAffected, translateError(result.Error)
}
