package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
)

type RecipeService interface {
	Create(ctx context.Context, name string, attrs recipes.RecipeAttrs, lines []recipes.IngredientLine) (*recipes.RecipeView, error)
	Read(ctx context.Context, name string) (*recipes.RecipeView, error)
	Update(ctx context.Context, name string, attrs recipes.RecipeAttrs, lines []recipes.IngredientLine) (*recipes.RecipeView, error)
	Delete(ctx context.Context, name string) (*recipes.DeleteResult, error)
	ListRecipes(ctx context.Context) ([]recipes.RecipeSummary, error)
	ListIngredients(ctx context.Context) ([]*model.Ingredient, error)
	RecipesByIngredient(ctx context.Context, name string) ([]recipes.RecipeSummary, error)
	ListUnits(ctx context.Context) ([]*model.UnitOfMeasure, error)
	UnitConversions(ctx context.Context, unit string) ([]*model.UnitConversion, error)
}

type RecipeServer struct {
	service RecipeService
	logger  *zap.Logger
}

// recipeRequest is the body of POST and PUT. A missing ingredients key leaves the stored
// ingredients alone on PUT.
type recipeRequest struct {
	recipes.RecipeAttrs
	Ingredients []recipes.IngredientLine `json:"ingredients"`
}

func NewRecipeServer(service RecipeService, logger *zap.Logger) *RecipeServer {
	return &RecipeServer{service: service, logger: logger}
}

func (s *RecipeServer) ListRecipes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.service.ListRecipes(r.Context())
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

func (s *RecipeServer) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	name, request, err := s.recipeRequest(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	view, err := s.service.Create(r.Context(), name, request.RecipeAttrs, request.Ingredients)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, view)
}

func (s *RecipeServer) GetRecipe(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	view, err := s.service.Read(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *RecipeServer) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	name, request, err := s.recipeRequest(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	view, err := s.service.Update(r.Context(), name, request.RecipeAttrs, request.Ingredients)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *RecipeServer) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	result, err := s.service.Delete(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *RecipeServer) recipeRequest(r *http.Request) (string, *recipeRequest, error) {
	name, err := pathName(r)
	if err != nil {
		return "", nil, err
	}

	var request recipeRequest
	if err = decodeBody(r, &request); err != nil {
		return "", nil, err
	}

	return name, &request, nil
}
