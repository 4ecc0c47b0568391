package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initWorkQueueMetrics() {
	r.WorkItemsAddedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_workqueue_items_added_total",
			Help: "Total number of work items added to a locale's bag",
		},
		[]string{"locale"},
	)

	r.WorkItemsRemovedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_workqueue_items_removed_total",
			Help: "Total number of work items removed from a locale's bag",
		},
		[]string{"locale"},
	)

	r.BagSegmentsAllocated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hypergraph_bag_segments_allocated_total",
			Help: "Total number of bag segments allocated across all locales",
		},
	)

	r.QueuePacingVelocity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hypergraph_workqueue_pacing_velocity",
			Help: "Most recently observed flush velocity in items per millisecond",
		},
	)

	r.RemoteAddWorkTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypergraph_workqueue_remote_add_total",
			Help: "Total number of cross-locale bulk adds dispatched",
		},
		[]string{"source_locale", "dest_locale"},
	)
}
