package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

func (r *Repository) AddIngredient(ctx context.Context, ingredient *model.Ingredient) error {
	if ingredient.RefQuantity <= 0 {
		return fmt.Errorf("%w: ref_quantity must be greater than 0, got %v", ErrInvalidValue, ingredient.RefQuantity)
	}

	if ingredient.RefPrice < 0 {
		return fmt.Errorf("%w: ref_price must not be negative, got %v", ErrInvalidValue, ingredient.RefPrice)
	}

	result := r.DB.WithContext(ctx).Create(ingredient)

	return translateError(result.Error)
}

func (r *Repository) GetIngredient(ctx context.Context, ingredientID int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	if result := r.DB.WithContext(ctx).First(&ingredient, ingredientID); result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &ingredient, nil
}

func (r *Repository) ListIngredients(ctx context.Context) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	if result := r.DB.WithContext(ctx).Order("name").Find(&ingredients); result.Error != nil {
		r.Logger.Error("error listing ingredients", zap.Error(result.Error))

		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) AddRecipeIngredient(ctx context.Context, entry *model.RecipeIngredient) error {
	if entry.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0, got %v", ErrInvalidValue, entry.Quantity)
	}

	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(entry)

	return translateError(result.Error)
}

func (r *Repository) GetRecipeIngredient(ctx context.Context, recipeID int64, ingredientID int64) (*model.RecipeIngredient, error) {
	var entry model.RecipeIngredient

	result := r.DB.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Take(&entry)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &entry, nil
}

func (r *Repository) UpdateRecipeIngredientFields(ctx context.Context, recipeID int64, ingredientID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	if quantity, ok := fields["quantity"].(float64); ok && quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0, got %v", ErrInvalidValue, quantity)
	}

	result := r.DB.WithContext(ctx).Model(&model.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Updates(fields)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteRecipeIngredient(ctx context.Context, recipeID int64, ingredientID int64) (int64, error) {
	result := r.DB.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&model.RecipeIngredient{})

	return result.RowsAffected, translateError(result.Error)
}

func (r *Repository) DeleteRecipeIngredients(ctx context.Context, recipeID int64) (int64, error) {
	result := r.DB.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{})

	return result.RowsAffected, translateError(result.Error)
}

func (r *Repository) FindRecipesByIngredient(ctx context.Context, ingredientID int64) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	result := r.DB.WithContext(ctx).
		Where("id IN (?)", r.DB.Model(&model.RecipeIngredient{}).Select("recipe_id").Where("ingredient_id = ?", ingredientID)).
		Order("name").
		Find(&recipes)
	if result.Error != nil {
		r.Logger.Error("error finding recipes for ingredient", zap.Int64("ingredient_id", ingredientID), zap.Error(result.Error))

		return nil, result.Error
	}

	return recipes, nil
}
