package hypergraph

import (
	"runtime"
	"sync/atomic"

	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// spinlock is a test-and-test-and-set lock: the fast path is a single
// compare-and-swap; the slow path re-reads the flag and yields the
// goroutine to the scheduler between observed-held states rather than
// hammering the cache line with repeated CAS attempts. A contention
// counter tracks failed fast-path attempts for diagnostics.
type spinlock struct {
	held       atomic.Bool
	contention atomic.Uint64
}

func (s *spinlock) Lock() {
	if s.held.CompareAndSwap(false, true) {
		return
	}
	s.contention.Add(1)
	metrics.DefaultRegistry().SpinlockContentionTotal.Inc()
	for {
		for s.held.Load() {
			runtime.Gosched()
		}
		if s.held.CompareAndSwap(false, true) {
			return
		}
		s.contention.Add(1)
		metrics.DefaultRegistry().SpinlockContentionTotal.Inc()
	}
}

func (s *spinlock) Unlock() {
	s.held.Store(false)
}

// Contention reports the number of failed fast-path acquire attempts.
func (s *spinlock) Contention() uint64 {
	return s.contention.Load()
}
