package workqueue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/locality"
	"github.com/dd0wney/hypergraph/pkg/logging"
	"github.com/dd0wney/hypergraph/pkg/metrics"
	"github.com/dd0wney/hypergraph/pkg/termination"
)

// AggregationMode controls whether remote enqueues are delivered
// immediately or batched behind a per-destination-locale buffer.
type AggregationMode int

const (
	// NoAggregation delivers every remote AddWork straight into the
	// destination locale's Bag.
	NoAggregation AggregationMode = iota
	// StaticAggregation batches remote work behind a fixed-size buffer
	// per destination locale, flushed when full or on demand.
	StaticAggregation
	// DynamicAggregation behaves like StaticAggregation but additionally
	// tracks a flush-rate velocity so WatchPacing can widen or narrow the
	// buffer under load.
	DynamicAggregation
)

// remoteBuffer holds work destined for one locale, aggregated locally
// before a bulk AddBulk delivery.
type remoteBuffer struct {
	mu    sync.Mutex
	items []any
	cap   int
}

// WorkQueue is the distributed facade over one Bag per locale. Local
// enqueues go straight to the owning locale's Bag; remote enqueues are
// either delivered immediately or aggregated according to mode. There is no
// notion of a distinct source process in this single-process engine, so
// aggregation buffers are keyed by destination locale only.
type WorkQueue[T any] struct {
	bags     []*Bag[T]
	buffers  []*remoteBuffer
	mode     AggregationMode
	shutdown []atomic.Bool

	flushed atomic.Uint64

	cfg     config.Params
	metrics *metrics.Registry
	logger  logging.Logger
}

// New allocates a WorkQueue with one Bag (of the given parallelism) per
// locale.
func New[T any](numLocales, parallelism int, mode AggregationMode, cfg config.Params) *WorkQueue[T] {
	if numLocales < 1 {
		numLocales = 1
	}
	wq := &WorkQueue[T]{
		bags:     make([]*Bag[T], numLocales),
		buffers:  make([]*remoteBuffer, numLocales),
		mode:     mode,
		shutdown: make([]atomic.Bool, numLocales),
		cfg:      cfg,
		metrics:  metrics.DefaultRegistry(),
		logger:   logging.NewNopLogger(),
	}
	bufCap := cfg.InitialBlockSize
	if bufCap < 1 {
		bufCap = 1
	}
	for i := 0; i < numLocales; i++ {
		wq.bags[i] = NewBag[T](parallelism, cfg)
		wq.buffers[i] = &remoteBuffer{cap: bufCap}
	}
	return wq
}

// WithLogger overrides the WorkQueue's logger.
func (wq *WorkQueue[T]) WithLogger(l logging.Logger) *WorkQueue[T] {
	wq.logger = l
	return wq
}

// WithMetrics overrides the WorkQueue's metrics registry.
func (wq *WorkQueue[T]) WithMetrics(m *metrics.Registry) *WorkQueue[T] {
	wq.metrics = m
	return wq
}

// AddWork enqueues w, destined for the "to" locale, as observed by code
// running on locale "from". A local destination (from == to) always goes
// straight to the Bag; a remote destination is subject to the configured
// aggregation mode.
func (wq *WorkQueue[T]) AddWork(w T, from, to locality.Locale) {
	if int(to) == int(from) || wq.mode == NoAggregation {
		wq.bags[to].Add(w)
		wq.metrics.RecordWorkAdded(to.String(), 1)
		return
	}
	wq.remoteAppend(w, from, to)
}

func (wq *WorkQueue[T]) remoteAppend(w T, from, to locality.Locale) {
	buf := wq.buffers[to]
	buf.mu.Lock()
	buf.items = append(buf.items, w)
	full := len(buf.items) >= buf.cap
	var drained []any
	if full {
		drained = buf.items
		buf.items = nil
	}
	buf.mu.Unlock()

	wq.metrics.RecordRemoteAddWork(from.String(), to.String())
	if full {
		wq.deliver(to, drained)
	}
}

func (wq *WorkQueue[T]) deliver(to locality.Locale, items []any) {
	if len(items) == 0 {
		return
	}
	typed := make([]T, len(items))
	for i, it := range items {
		typed[i] = it.(T)
	}
	wq.bags[to].AddBulk(typed)
	wq.flushed.Add(uint64(len(typed)))
	wq.metrics.RecordWorkAdded(to.String(), len(typed))
}

// GetWork removes one item from the given locale's Bag.
func (wq *WorkQueue[T]) GetWork(loc locality.Locale) (T, bool) {
	v, ok := wq.bags[loc].Remove()
	if ok {
		wq.metrics.RecordWorkRemoved(loc.String(), 1)
	}
	return v, ok
}

// FlushLocal forces any buffered remote work destined for loc into loc's
// Bag, regardless of whether the buffer is full.
func (wq *WorkQueue[T]) FlushLocal(loc locality.Locale) {
	start := time.Now()
	buf := wq.buffers[loc]
	buf.mu.Lock()
	drained := buf.items
	buf.items = nil
	buf.mu.Unlock()
	wq.deliver(loc, drained)
	wq.metrics.RecordBufferFlush(loc.String(), time.Since(start))
}

// Flush drains every locale's remote aggregation buffer.
func (wq *WorkQueue[T]) Flush() {
	for i := range wq.buffers {
		wq.FlushLocal(locality.Locale(i))
	}
}

// Shutdown sets loc's shutdown flag, which DoWorkLoop checks at the top of
// each iteration. AddWork does not consult the flag, so work can still be
// added afterwards. Shutdown does not drain already-buffered work; callers
// should Flush first.
func (wq *WorkQueue[T]) Shutdown(loc locality.Locale) { wq.shutdown[loc].Store(true) }

// IsShutdown reports whether Shutdown has been called for loc.
func (wq *WorkQueue[T]) IsShutdown(loc locality.Locale) bool { return wq.shutdown[loc].Load() }

// Size returns the total item count across every locale's Bag plus
// anything still sitting in an aggregation buffer.
func (wq *WorkQueue[T]) Size() int {
	total := 0
	for _, bag := range wq.bags {
		total += bag.Size()
	}
	for _, buf := range wq.buffers {
		buf.mu.Lock()
		total += len(buf.items)
		buf.mu.Unlock()
	}
	return total
}

// WatchPacing periodically measures the flush velocity (items delivered out
// of aggregation buffers per millisecond) under DynamicAggregation and
// widens or narrows each locale's buffer capacity to keep velocity above
// the configured minimum, until ctx is canceled. A tick whose velocity is
// below the minimum also flushes every aggregation buffer.
func (wq *WorkQueue[T]) WatchPacing(ctx context.Context, interval time.Duration) {
	if wq.mode != DynamicAggregation {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := wq.flushed.Load()
			velocity := float64(cur-last) / (interval.Seconds() * 1000)
			last = cur
			wq.metrics.QueuePacingVelocity.Set(velocity)
			wq.adjustBuffers(velocity)
			if velocity < wq.cfg.MinFlushVelocity {
				wq.Flush()
			}
		}
	}
}

func (wq *WorkQueue[T]) adjustBuffers(velocity float64) {
	for _, buf := range wq.buffers {
		buf.mu.Lock()
		if velocity < wq.cfg.MinFlushVelocity && buf.cap > 1 {
			buf.cap = buf.cap / 2
			if buf.cap < 1 {
				buf.cap = 1
			}
		} else if velocity >= wq.cfg.MinFlushVelocity {
			buf.cap = buf.cap * 2
			if buf.cap > wq.cfg.MaxBlockSize {
				buf.cap = wq.cfg.MaxBlockSize
			}
		}
		buf.mu.Unlock()
	}
}

// DoWorkLoop drains locale loc's Bag with up to maxTaskPar concurrent
// handlers, until td reports quiescence and the Bag is observed empty.
// It owns only the completion half of the started/finished protocol: every
// dequeued item was already counted by its producer's td.Started call (the
// initial seed before the loop starts, or a handler enqueuing derived work),
// and DoWorkLoop calls td.Finished once handle returns. Callers must not
// also call td.Finished for an item handle processes, or it will be
// double-counted.
func DoWorkLoop[T any](ctx context.Context, wq *WorkQueue[T], td *termination.Detector, loc locality.Locale, maxTaskPar int, handle func(context.Context, T) error) error {
	if maxTaskPar < 1 {
		maxTaskPar = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxTaskPar)

	for {
		if gctx.Err() != nil {
			break
		}
		if wq.IsShutdown(loc) {
			break
		}
		item, ok := wq.GetWork(loc)
		if !ok {
			if td.HasTerminated() {
				break
			}
			time.Sleep(time.Millisecond)
			continue
		}

		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			defer td.Finished(1)
			return handle(gctx, item)
		})
	}

	return g.Wait()
}
