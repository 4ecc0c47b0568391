package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHypergraphMetrics() {
	r.InclusionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_inclusions_total",
			Help: "Total number of vertex-edge inclusions added",
		},
		[]string{"side"}, // "vertex" or "edge"
	)

	r.InclusionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypergraph_inclusion_duration_seconds",
			Help:    "Time to add a single inclusion",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
		[]string{"path"}, // "direct" or "buffered"
	)

	r.BufferFlushesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_destination_buffer_flushes_total",
			Help: "Total number of destination buffer drains",
		},
		[]string{"side"},
	)

	r.BufferFlushLatency = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hypergraph_destination_buffer_flush_latency_seconds",
			Help:    "Latency of a destination buffer drain",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.BufferClosedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_destination_buffer_closed_total",
			Help: "Total number of appends rejected because a buffer was full and awaiting drain",
		},
	)

	r.VertexNeighborListSorts = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_neighbor_list_sorts_total",
			Help: "Total number of lazy neighbor-list sorts performed",
		},
	)

	r.SpinlockContentionTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_spinlock_contention_total",
			Help: "Total number of failed test-and-test-and-set spinlock acquire attempts",
		},
	)
}
