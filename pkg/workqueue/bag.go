package workqueue

import (
	"runtime"
	"sync/atomic"

	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// Bag is a set of per-thread Segments sized by a locale's parallelism, plus
// round-robin hints for where to start an enqueue or dequeue scan.
type Bag[T any] struct {
	segments    []*Segment[T]
	startIdxEnq atomic.Uint64
	startIdxDeq atomic.Uint64
}

// NewBag allocates a Bag with one Segment per unit of parallelism.
func NewBag[T any](parallelism int, cfg config.Params) *Bag[T] {
	if parallelism < 1 {
		parallelism = 1
	}
	segs := make([]*Segment[T], parallelism)
	for i := range segs {
		segs[i] = newSegment[T](cfg.InitialBlockSize, cfg.MaxBlockSize)
	}
	metrics.DefaultRegistry().BagSegmentsAllocated.Add(float64(parallelism))
	return &Bag[T]{segments: segs}
}

// Add runs the two-phase acquisition: a best-case scan of every segment
// trying one CAS each, falling back to pinning on the round-robin hint and
// spinning (yielding between observations) until it acquires.
func (bag *Bag[T]) Add(item T) {
	n := len(bag.segments)
	for i := 0; i < n; i++ {
		seg := bag.segments[i]
		if seg.tryAcquire(statusAdd) {
			seg.push(item)
			seg.release()
			return
		}
	}

	hint := int(bag.startIdxEnq.Add(1)-1) % n
	seg := bag.segments[hint]
	for {
		if seg.tryAcquire(statusAdd) {
			seg.push(item)
			seg.release()
			return
		}
		runtime.Gosched()
	}
}

// AddBulk pushes every item in order, used for cross-locale bulk-append
// delivery.
func (bag *Bag[T]) AddBulk(items []T) {
	for _, it := range items {
		bag.Add(it)
	}
}

// Remove performs the best-case dequeue scan starting at the round-robin
// hint: take from the first segment that is both non-empty and acquirable.
// The scan makes a single pass, so ok is false when no segment was both
// non-empty and acquirable, including when the only non-empty segments
// were held by another operation.
func (bag *Bag[T]) Remove() (item T, ok bool) {
	n := len(bag.segments)
	hint := int(bag.startIdxDeq.Add(1)-1) % n
	for i := 0; i < n; i++ {
		seg := bag.segments[(hint+i)%n]
		if seg.Len() == 0 {
			continue
		}
		if seg.tryAcquire(statusRemove) {
			v, got := seg.pop()
			seg.release()
			if got {
				return v, true
			}
		}
	}
	return item, false
}

// TakeElements performs a bulk dequeue of up to n items from the first
// acquirable non-empty segment found starting at the dequeue hint.
func (bag *Bag[T]) TakeElements(n int) []T {
	total := len(bag.segments)
	hint := int(bag.startIdxDeq.Add(1)-1) % total
	for i := 0; i < total; i++ {
		seg := bag.segments[(hint+i)%total]
		if seg.Len() == 0 {
			continue
		}
		if seg.tryAcquire(statusRemove) {
			items := seg.takeElements(n)
			seg.release()
			if len(items) > 0 {
				return items
			}
		}
	}
	return nil
}

// Size is the sum of each segment's lock-free element count: the total
// number of successful adds minus successful removes across the Bag's
// lifetime.
func (bag *Bag[T]) Size() int {
	total := 0
	for _, seg := range bag.segments {
		total += seg.Len()
	}
	return total
}
