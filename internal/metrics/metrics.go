// Package metrics holds the Prometheus collectors of the service.
// Every collector is registered on the default registry when the package loads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feed"

var (
	// HTTPRequestsTotal 标签：method、path、status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	// QueryCacheResults 标签 result：hit、stale、miss、error
	QueryCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "cache_results_total",
			Help:      "Query cache lookups by outcome.",
		},
		[]string{"result"},
	)

	LikeTasksDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "likes",
			Name:      "tasks_dropped_total",
			Help:      "Like tasks dropped because the worker queue was full.",
		},
	)

	// LikeFlushes 标签 result：success、failure
	LikeFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "likes",
			Name:      "flushes_total",
			Help:      "Like batches written to the ledger.",
		},
		[]string{"result"},
	)
)
