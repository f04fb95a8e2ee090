package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// ReconcileActions counts the per-line decisions taken while reconciling a recipe's ingredients.
	ReconcileActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_reconcile_actions_total",
			Help: "Total number of ingredient line actions applied to recipes",
		},
		[]string{"action"},
	)
)

func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func RecordReconcileAction(action string) {
	ReconcileActions.WithLabelValues(action).Inc()
}
