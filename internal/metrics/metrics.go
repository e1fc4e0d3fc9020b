// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SelectionOutcomes counts engine results by kind (stored, generated, exhausted).
	SelectionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factbot_selection_outcomes_total",
			Help: "Total number of fact selections by outcome",
		},
		[]string{"mode", "outcome"},
	)

	// GenerationAttempts counts provider candidates by verdict.
	GenerationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factbot_generation_attempts_total",
			Help: "Total number of generation attempts by verdict",
		},
		[]string{"verdict"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "factbot_generation_duration_seconds",
			Help:    "Duration of a single provider call",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factbot_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factbot_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factbot_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "factbot_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factbot_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)
)

func RecordSelection(mode, outcome string) {
	SelectionOutcomes.WithLabelValues(mode, outcome).Inc()
}

func RecordGenerationAttempt(verdict string) {
	GenerationAttempts.WithLabelValues(verdict).Inc()
}

func RecordGeneration(duration time.Duration) {
	GenerationDuration.Observe(duration.Seconds())
}

func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
