package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/metrics"
)

// NewRouter mounts the recipe, ingredient and unit endpoints next to /healthz and /metrics.
func NewRouter(recipeServer *RecipeServer, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(metrics.Middleware)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeServer.ListRecipes)
			r.Post("/{name}", recipeServer.CreateRecipe)
			r.Get("/{name}", recipeServer.GetRecipe)
			r.Put("/{name}", recipeServer.UpdateRecipe)
			r.Delete("/{name}", recipeServer.DeleteRecipe)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", recipeServer.ListIngredients)
			r.Get("/{name}/recipes", recipeServer.GetRecipesByIngredient)
		})

		r.Route("/units", func(r chi.Router) {
			r.Get("/", recipeServer.ListUnits)
			r.Get("/{name}/conversions", recipeServer.GetUnitConversions)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request served",
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
