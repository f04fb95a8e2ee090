package recipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/repository"
)

// Action is the reconciliation decision taken for one ingredient line.
type Action int

const (
	ActionDelete Action = iota + 1
	ActionInsert
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Decide picks the action for a line given the association currently stored for it, nil when
// there is none. The three cases are exhaustive.
func Decide(line IngredientLine, existing *model.RecipeIngredient) Action {
	switch {
	case line.Delete:
		return ActionDelete
	case existing == nil:
		return ActionInsert
	default:
		return ActionUpdate
	}
}

type step struct {
	action       Action
	index        int
	ingredientID int64
	line         IngredientLine
}

// plan reads the stored association of every line and decides what to do with it. Nothing is
// written, so a line that cannot be honoured fails the request before any change is made.
func plan(ctx context.Context, tx repository.RecipeRepository, recipeID int64, lines []IngredientLine) ([]step, error) {
	steps := make([]step, 0, len(lines))

	for index, line := range lines {
		ingredientID := identity.Derive(*line.Name)

		existing, err := tx.GetRecipeIngredient(ctx, recipeID, ingredientID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		next := step{action: Decide(line, existing), index: index, ingredientID: ingredientID, line: line}

		switch next.action {
		case ActionDelete:
			if existing == nil {
				return nil, fmt.Errorf("%w: ingredient %q is not part of this recipe", ErrNotFound, *line.Name)
			}
		case ActionInsert:
			if err = requireComplete(index, line); err != nil {
				return nil, err
			}
		case ActionUpdate:
		}

		steps = append(steps, next)
	}

	return steps, nil
}
