// Package termination implements the distributed started/finished counter
// protocol that coordinates dynamically generated work: s-walk and BFS
// enqueue further tasks as they run, and the Detector is the only
// mechanism that lets workers agree the whole computation is quiescent.
package termination

import (
	"sync/atomic"
	"time"

	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// Detector holds a started/finished counter pair. The computation is
// quiescent iff a consistent read observes started == finished. Callers
// must call Started before enqueuing derived work and Finished after their
// handler completes, so that pending_work <= started - finished always
// holds.
type Detector struct {
	started  atomic.Int64
	finished atomic.Int64
}

// New returns a Detector with both counters at zero.
func New() *Detector {
	return &Detector{}
}

// Started increments the started counter by n.
func (d *Detector) Started(n int64) { d.started.Add(n) }

// Finished increments the finished counter by n.
func (d *Detector) Finished(n int64) { d.finished.Add(n) }

// HasTerminated reports whether started and finished agree. finished is
// read first: a Started racing in after this read can only widen the
// observed gap, never cause a false "terminated" report.
func (d *Detector) HasTerminated() bool {
	f := d.finished.Load()
	s := d.started.Load()
	return s == f
}

// Wait polls HasTerminated with exponential backoff, starting at minBackoff
// and doubling up to maxBackoff, until it reports true.
func (d *Detector) Wait(minBackoff, maxBackoff time.Duration) {
	start := time.Now()
	backoff := minBackoff
	if backoff <= 0 {
		backoff = time.Millisecond
	}
	for !d.HasTerminated() {
		time.Sleep(backoff)
		metrics.DefaultRegistry().TerminationBackoffSpins.Inc()
		backoff *= 2
		if maxBackoff > 0 && backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
	metrics.DefaultRegistry().RecordTerminationWait(time.Since(start))
}
