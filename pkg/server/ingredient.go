package server

import "net/http"

func (s *RecipeServer) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := s.service.ListIngredients(r.Context())
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, IngredientsFromModel(ingredients))
}

func (s *RecipeServer) GetRecipesByIngredient(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	summaries, err := s.service.RecipesByIngredient(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, summaries)
}
