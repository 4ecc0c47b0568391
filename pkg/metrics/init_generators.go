package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGeneratorMetrics() {
	r.GeneratorRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_generator_runs_total",
			Help: "Total number of generator invocations",
		},
		[]string{"kind"}, // erdos_renyi, chung_lu, bter
	)

	r.GeneratorDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraph_generator_duration_seconds",
			Help:    "Time to generate a random hypergraph",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		},
		[]string{"kind"},
	)

	r.GeneratorInclusionsMade = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_generator_inclusions_total",
			Help: "Total number of inclusions produced by a generator",
		},
		[]string{"kind"},
	)

	r.GeneratorDuplicatesDropped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_generator_duplicates_dropped_total",
			Help: "Total number of duplicate candidate inclusions discarded during generation",
		},
		[]string{"kind"},
	)
}
