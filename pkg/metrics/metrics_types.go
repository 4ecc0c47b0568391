package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all Prometheus metrics exposed by the engine.
type Registry struct {
	// Hypergraph store metrics
	InclusionsTotal         *prometheus.CounterVec
	InclusionDuration       *prometheus.HistogramVec
	BufferFlushesTotal      *prometheus.CounterVec
	BufferFlushLatency      prometheus.Histogram
	BufferClosedTotal       prometheus.Counter
	VertexNeighborListSorts prometheus.Counter
	SpinlockContentionTotal prometheus.Counter

	// Work queue metrics
	WorkItemsAddedTotal   *prometheus.CounterVec
	WorkItemsRemovedTotal *prometheus.CounterVec
	BagSegmentsAllocated  prometheus.Counter
	QueuePacingVelocity   prometheus.Gauge
	RemoteAddWorkTotal    *prometheus.CounterVec

	// Termination detector metrics
	TerminationWaitsTotal     prometheus.Counter
	TerminationWaitDuration   prometheus.Histogram
	TerminationBackoffSpins   prometheus.Counter

	// Generator metrics
	GeneratorRunsTotal      *prometheus.CounterVec
	GeneratorDuration       *prometheus.HistogramVec
	GeneratorInclusionsMade *prometheus.CounterVec
	GeneratorDuplicatesDropped *prometheus.CounterVec

	// System metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry  *prometheus.Registry
	mu        sync.RWMutex
	startTime time.Time
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry:  reg,
		startTime: time.Now(),
	}

	r.initHypergraphMetrics()
	r.initWorkQueueMetrics()
	r.initTerminationMetrics()
	r.initGeneratorMetrics()
	r.initSystemMetrics()

	go r.collectSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
