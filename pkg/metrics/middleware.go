package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// Middleware records request count and latency labelled by the chi route pattern, so path
// parameters such as recipe names never become label values.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		TrackActiveRequest(true)
		defer TrackActiveRequest(false)

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		RecordAPIRequest(r.Method, route, strconv.Itoa(statusOf(ww)), time.Since(start))
	})
}

// statusOf reports 200 for handlers that never wrote, as net/http does.
func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}

	return http.StatusOK
}
