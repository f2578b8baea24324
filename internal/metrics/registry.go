package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions for the LeadShield validation pipeline

var (
	// ValidationChecks counts field validations by kind and outcome
	// (pass, reject, pass_through).
	ValidationChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leadshield",
			Subsystem: "validation",
			Name:      "checks_total",
			Help:      "Total number of field validations performed",
		},
		[]string{"field_kind", "outcome"},
	)

	// ValidationDuration observes end-to-end validation latency per field kind.
	ValidationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "leadshield",
			Subsystem: "validation",
			Name:      "duration_seconds",
			Help:      "Field validation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~32s
		},
		[]string{"field_kind"},
	)

	// ProviderRequests counts outbound verification provider calls.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leadshield",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of outbound verification provider requests",
		},
		[]string{"provider", "operation", "result"},
	)

	// QuotaExhausted counts email validations that fell into the fail-open
	// path because the provider reported zero credits.
	QuotaExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leadshield",
			Subsystem: "quota",
			Name:      "exhausted_total",
			Help:      "Total number of validations accepted fail-open due to exhausted credits",
		},
	)

	// AlertsSent counts exhaustion webhook alerts actually dispatched.
	AlertsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leadshield",
			Subsystem: "quota",
			Name:      "alerts_sent_total",
			Help:      "Total number of quota-exhaustion webhook alerts sent",
		},
	)
)
