package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom Prometheus metrics for the application
type Metrics struct {
	// Admin mutation counters by entity and operation
	Mutations *prometheus.CounterVec

	// Rejected form submissions by form name
	ValidationFailures *prometheus.CounterVec

	// Inbound contact messages
	MessagesReceived prometheus.Counter

	// Stale-route signals sent to the rendering cache
	CacheInvalidations prometheus.Counter

	// Admin login attempts by outcome
	LoginAttempts *prometheus.CounterVec
}

var globalMetrics *Metrics

// InitMetrics initializes the Prometheus metrics
func InitMetrics() *Metrics {
	metrics := &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "musefolio_mutations_total",
			Help: "Total number of successful admin mutations by entity and operation",
		}, []string{"entity", "operation"}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "musefolio_validation_failures_total",
			Help: "Total number of form submissions rejected by validation",
		}, []string{"form"}),

		MessagesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "musefolio_contact_messages_total",
			Help: "Total number of contact messages received",
		}),

		CacheInvalidations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "musefolio_cache_invalidations_total",
			Help: "Total number of routes invalidated after mutations",
		}),

		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "musefolio_login_attempts_total",
			Help: "Total number of admin login attempts by outcome",
		}, []string{"outcome"}), // outcome: "success" or "failure"
	}

	globalMetrics = metrics
	return metrics
}

// GetMetrics returns the global metrics instance (nil until InitMetrics runs)
func GetMetrics() *Metrics {
	return globalMetrics
}
