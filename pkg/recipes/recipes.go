package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/metrics"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
)

// Service keeps recipes and their ingredient associations in step with request payloads. Every
// mutating operation runs inside a single store transaction.
type Service struct {
	store  repository.RecipeRepository
	logger *zap.Logger
}

func NewService(store repository.RecipeRepository, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, name string, attrs RecipeAttrs, lines []IngredientLine) (*RecipeView, error) {
	if err := checkRecipeName(name); err != nil {
		return nil, err
	}

	if err := validateLines(lines, true); err != nil {
		return nil, err
	}

	recipeID := identity.Derive(name)

	var view *RecipeView

	err := s.store.Transaction(ctx, func(tx repository.RecipeRepository) error {
		if _, err := tx.GetRecipe(ctx, recipeID); err == nil {
			return fmt.Errorf("%w: recipe %q already exists", ErrConflict, name)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		recipe := model.Recipe{
			ID:     recipeID,
			Name:   strings.TrimSpace(name),
			Method: valueOf(attrs.Method),
			Author: valueOf(attrs.Author),
			Book:   valueOf(attrs.Book),
		}

		if err := tx.AddRecipe(ctx, &recipe); err != nil {
			return translateStoreError(err)
		}

		for index, line := range lines {
			next := step{action: ActionInsert, index: index, ingredientID: identity.Derive(*line.Name), line: line}
			if err := s.apply(ctx, tx, recipeID, next); err != nil {
				return err
			}
		}

		var err error

		view, err = loadView(ctx, tx, recipeID, name)

		return err
	})
	if err != nil {
		s.logger.Info("recipe not created", zap.String("recipe", name), zap.Error(err))

		return nil, err
	}

	s.logger.Info("recipe created", zap.String("recipe", name), zap.Int64("recipe_id", recipeID), zap.Int("ingredients", len(lines)))

	return view, nil
}

func (s *Service) Read(ctx context.Context, name string) (*RecipeView, error) {
	if err := checkRecipeName(name); err != nil {
		return nil, err
	}

	return loadView(ctx, s.store, identity.Derive(name), name)
}

// Update applies a partial change to a recipe. When lines is nil the ingredient associations are
// not touched; otherwise each line is reconciled on its own and unmentioned associations stay as
// they are. Only the attributes present in attrs change.
func (s *Service) Update(ctx context.Context, name string, attrs RecipeAttrs, lines []IngredientLine) (*RecipeView, error) {
	if err := checkRecipeName(name); err != nil {
		return nil, err
	}

	if err := validateStruct("", attrs); err != nil {
		return nil, err
	}

	if err := validateLines(lines, false); err != nil {
		return nil, err
	}

	var view *RecipeView

	err := s.store.Transaction(ctx, func(tx repository.RecipeRepository) error {
		recipe, err := tx.GetRecipe(ctx, identity.Derive(name))
		if err != nil {
			return notFound(err, "recipe", name)
		}

		if lines != nil {
			steps, err := plan(ctx, tx, recipe.ID, lines)
			if err != nil {
				return err
			}

			for _, next := range steps {
				if err = s.apply(ctx, tx, recipe.ID, next); err != nil {
					return err
				}
			}
		}

		recipeID, err := s.updateAttrs(ctx, tx, recipe, attrs)
		if err != nil {
			return err
		}

		view, err = loadView(ctx, tx, recipeID, name)

		return err
	})
	if err != nil {
		s.logger.Info("recipe not updated", zap.String("recipe", name), zap.Error(err))

		return nil, err
	}

	s.logger.Info("recipe updated", zap.String("recipe", name), zap.Int("lines", len(lines)))

	return view, nil
}

func (s *Service) Delete(ctx context.Context, name string) (*DeleteResult, error) {
	if err := checkRecipeName(name); err != nil {
		return nil, err
	}

	var result DeleteResult

	err := s.store.Transaction(ctx, func(tx repository.RecipeRepository) error {
		recipe, err := tx.GetRecipe(ctx, identity.Derive(name))
		if err != nil {
			return notFound(err, "recipe", name)
		}

		removed, err := tx.DeleteRecipeIngredients(ctx, recipe.ID)
		if err != nil {
			return err
		}

		if _, err = tx.DeleteRecipe(ctx, recipe.ID); err != nil {
			return err
		}

		result = DeleteResult{Name: recipe.Name, RemovedIngredients: removed}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("recipe deleted", zap.String("recipe", result.Name), zap.Int64("removed_ingredients", result.RemovedIngredients))

	return &result, nil
}

func (s *Service) ListRecipes(ctx context.Context) ([]RecipeSummary, error) {
	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	return summariesFromModel(recipes), nil
}

func (s *Service) ListIngredients(ctx context.Context) ([]*model.Ingredient, error) {
	return s.store.ListIngredients(ctx)
}

// RecipesByIngredient returns every recipe whose associations reference the named ingredient.
func (s *Service) RecipesByIngredient(ctx context.Context, name string) ([]RecipeSummary, error) {
	if !identity.Valid(name) {
		return nil, fmt.Errorf("%w: ingredient name %q must contain at least one letter", ErrBadRequest, name)
	}

	ingredient, err := s.store.GetIngredient(ctx, identity.Derive(name))
	if err != nil {
		return nil, notFound(err, "ingredient", name)
	}

	recipes, err := s.store.FindRecipesByIngredient(ctx, ingredient.ID)
	if err != nil {
		return nil, err
	}

	return summariesFromModel(recipes), nil
}

func (s *Service) ListUnits(ctx context.Context) ([]*model.UnitOfMeasure, error) {
	return s.store.ListUnits(ctx)
}

// UnitConversions lists the stored conversion factors out of a unit. Nothing converts with them.
func (s *Service) UnitConversions(ctx context.Context, unit string) ([]*model.UnitConversion, error) {
	if _, err := s.store.GetUnit(ctx, unit); err != nil {
		return nil, notFound(err, "unit of measure", unit)
	}

	return s.store.ListConversions(ctx, unit)
}

func (s *Service) apply(ctx context.Context, tx repository.RecipeRepository, recipeID int64, next step) error {
	var err error

	switch next.action {
	case ActionDelete:
		_, err = tx.DeleteRecipeIngredient(ctx, recipeID, next.ingredientID)
	case ActionInsert:
		err = insertLine(ctx, tx, recipeID, next)
	case ActionUpdate:
		err = updateLine(ctx, tx, recipeID, next)
	}

	if err != nil {
		return err
	}

	metrics.RecordReconcileAction(next.action.String())
	s.logger.Debug("ingredient line reconciled",
		zap.Int64("recipe_id", recipeID),
		zap.Int64("ingredient_id", next.ingredientID),
		zap.Stringer("action", next.action))

	return nil
}

func insertLine(ctx context.Context, tx repository.RecipeRepository, recipeID int64, next step) error {
	line := next.line

	if err := checkUnit(ctx, tx, *line.UnitOfMeasure); err != nil {
		return err
	}

	if err := ensureIngredient(ctx, tx, next.ingredientID, line); err != nil {
		return err
	}

	err := tx.AddRecipeIngredient(ctx, &model.RecipeIngredient{
		RecipeID:      recipeID,
		IngredientID:  next.ingredientID,
		UnitOfMeasure: *line.UnitOfMeasure,
		Quantity:      *line.Quantity,
	})

	return translateStoreError(err)
}

func updateLine(ctx context.Context, tx repository.RecipeRepository, recipeID int64, next step) error {
	fields := map[string]any{}

	if next.line.UnitOfMeasure != nil {
		if err := checkUnit(ctx, tx, *next.line.UnitOfMeasure); err != nil {
			return err
		}

		fields["unit_of_measure"] = *next.line.UnitOfMeasure
	}

	if next.line.Quantity != nil {
		fields["quantity"] = *next.line.Quantity
	}

	err := tx.UpdateRecipeIngredientFields(ctx, recipeID, next.ingredientID, fields)
	if err != nil {
		return notFound(err, "ingredient", *next.line.Name)
	}

	return nil
}

// ensureIngredient creates the ingredient a line names when it is not stored yet, using the
// line's unit and quantity as its reference.
func ensureIngredient(ctx context.Context, tx repository.RecipeRepository, ingredientID int64, line IngredientLine) error {
	_, err := tx.GetIngredient(ctx, ingredientID)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	err = tx.AddIngredient(ctx, &model.Ingredient{
		ID:               ingredientID,
		Name:             strings.TrimSpace(*line.Name),
		RefUnitOfMeasure: *line.UnitOfMeasure,
		RefQuantity:      *line.Quantity,
		Available:        true,
	})

	return translateStoreError(err)
}

// updateAttrs applies the attributes present in attrs and returns the recipe's identifier, which
// changes when a rename normalises to a different name.
func (s *Service) updateAttrs(ctx context.Context, tx repository.RecipeRepository, recipe *model.Recipe, attrs RecipeAttrs) (int64, error) {
	recipeID := recipe.ID

	if attrs.Name != nil && strings.TrimSpace(*attrs.Name) != recipe.Name {
		newName := strings.TrimSpace(*attrs.Name)
		newID := identity.Derive(newName)

		if newID != recipeID {
			if _, err := tx.GetRecipe(ctx, newID); err == nil {
				return 0, fmt.Errorf("%w: recipe %q already exists", ErrConflict, newName)
			} else if !errors.Is(err, repository.ErrNotFound) {
				return 0, err
			}
		}

		if err := tx.RenameRecipe(ctx, recipeID, newID, newName); err != nil {
			return 0, translateStoreError(err)
		}

		s.logger.Info("recipe renamed", zap.String("from", recipe.Name), zap.String("to", newName))

		recipeID = newID
	}

	fields := map[string]any{}

	if attrs.Method != nil {
		fields["method"] = *attrs.Method
	}

	if attrs.Author != nil {
		fields["author"] = *attrs.Author
	}

	if attrs.Book != nil {
		fields["book"] = *attrs.Book
	}

	if err := tx.UpdateRecipeFields(ctx, recipeID, fields); err != nil {
		return 0, translateStoreError(err)
	}

	return recipeID, nil
}

func loadView(ctx context.Context, store repository.RecipeRepository, recipeID int64, name string) (*RecipeView, error) {
	recipe, err := store.GetRecipeWithIngredients(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe", name)
	}

	return viewFromModel(recipe), nil
}

func checkUnit(ctx context.Context, tx repository.RecipeRepository, unit string) error {
	_, err := tx.GetUnit(ctx, unit)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: unknown unit of measure %q", ErrBadRequest, unit)
	}

	return err
}

func checkRecipeName(name string) error {
	if !identity.Valid(name) {
		return fmt.Errorf("%w: recipe name %q must contain at least one letter", ErrBadRequest, name)
	}

	return nil
}

// notFound reports a missing entity by name and passes other store failures through.
func notFound(err error, kind string, name string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}

	return translateStoreError(err)
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
