package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSystemMetrics() {
	r.UptimeSeconds = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hypergraph_uptime_seconds",
			Help: "Time since the engine started in seconds",
		},
	)

	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hypergraph_goroutines",
			Help: "Number of goroutines",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hypergraph_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects",
		},
	)

	r.MemorySysBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hypergraph_memory_sys_bytes",
			Help: "Total bytes of memory obtained from the OS",
		},
	)
}

// collectSystemMetrics updates uptime, goroutine count, and heap stats every
// 10 seconds for the lifetime of the process.
func (r *Registry) collectSystemMetrics() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		r.UptimeSeconds.Set(time.Since(r.startTime).Seconds())
		r.GoRoutines.Set(float64(runtime.NumGoroutine()))

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		r.MemoryAllocBytes.Set(float64(m.Alloc))
		r.MemorySysBytes.Set(float64(m.Sys))
	}
}
