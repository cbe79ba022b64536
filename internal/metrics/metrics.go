// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency. path is the chi route
	// pattern, never the raw URL, to keep label cardinality bounded.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// AuthFailures counts rejected credentials by reason.
	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total number of rejected authentication attempts",
		},
		[]string{"reason"}, // reason: token, login
	)

	// TaskMutations counts successful task writes.
	TaskMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_mutations_total",
			Help: "Total number of successful task mutations",
		},
		[]string{"operation"}, // operation: create, update, delete
	)

	// RateLimited counts requests rejected with 429.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// RecordHTTPRequestDuration records the latency of one request.
func RecordHTTPRequestDuration(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// IncrementAuthFailure counts a rejected credential.
func IncrementAuthFailure(reason string) {
	AuthFailures.WithLabelValues(reason).Inc()
}

// IncrementTaskMutation counts a successful task write.
func IncrementTaskMutation(operation string) {
	TaskMutations.WithLabelValues(operation).Inc()
}
