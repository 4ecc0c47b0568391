package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTerminationMetrics() {
	r.TerminationWaitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_termination_waits_total",
			Help: "Total number of times a caller blocked on TerminationDetector.Wait",
		},
	)

	r.TerminationWaitDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hypergraph_termination_wait_duration_seconds",
			Help:    "Time spent blocked in TerminationDetector.Wait",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
	)

	r.TerminationBackoffSpins = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_termination_backoff_spins_total",
			Help: "Total number of exponential-backoff polling iterations",
		},
	)
}
