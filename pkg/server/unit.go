package server

import "net/http"

func (s *RecipeServer) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := s.service.ListUnits(r.Context())
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, UnitsFromModel(units))
}

func (s *RecipeServer) GetUnitConversions(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	conversions, err := s.service.UnitConversions(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, ConversionsFromModel(conversions))
}
