package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/recipes"
)

var ErrInvalidBody = errors.New("invalid request body")

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondError maps engine errors onto status codes. Anything outside the engine taxonomy is
// logged and reported as an internal error without details.
func (s *RecipeServer) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, recipes.ErrBadRequest), errors.Is(err, ErrInvalidBody):
		status = http.StatusBadRequest
	case errors.Is(err, recipes.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, recipes.ErrConflict):
		status = http.StatusConflict
	default:
		s.logger.Error("error serving request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})

		return
	}

	respondJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidBody, err)
}

// pathName returns the decoded {name} segment. chi matches on RawPath when the request has one,
// and only then is the segment still escaped.
func pathName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}

	name, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", recipes.ErrBadRequest, err)
	}

	return name, nil
}
