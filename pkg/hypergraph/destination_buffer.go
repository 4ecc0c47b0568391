package hypergraph

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// Kind tags what a DestinationBuffer entry's (srcID, destID) pair means:
// KindVertex means "append destID to the local vertex NodeData srcID";
// KindEdge means the symmetric operation against the edge NodeData array.
type Kind uint8

const (
	KindNone Kind = iota
	KindVertex
	KindEdge
)

// ErrBufferClosed is returned by Append once size has reached capacity and
// the buffer is awaiting a Drain + Clear. The original append protocol
// spins re-reserving a slot until one is free, which can deadlock if the
// drain is never observed (see the open question recorded in DESIGN.md);
// this implementation instead treats size >= capacity as "closed" and
// returns immediately.
var ErrBufferClosed = errors.New("hypergraph: destination buffer closed pending drain")

type bufferEntry struct {
	srcID  uint64
	destID uint64
	kind   Kind
}

// DestinationBuffer is a fixed-capacity batch of pending cross-locale
// inclusion writes targeting one locale's vertex and edge NodeData arrays.
// size counts reserved slots; filled counts slots actually written;
// filled <= size <= capacity holds at every observable moment.
type DestinationBuffer struct {
	capacity uint32
	size     atomic.Uint32
	filled   atomic.Uint32
	slots    []bufferEntry
}

// NewDestinationBuffer allocates a buffer with room for capacity entries.
func NewDestinationBuffer(capacity uint32) *DestinationBuffer {
	return &DestinationBuffer{
		capacity: capacity,
		slots:    make([]bufferEntry, capacity),
	}
}

// Append reserves a slot via fetch-add, writes the entry, then publishes it
// by incrementing filled -- Go's happens-before guarantee on the atomic
// increment satisfies the release-fence ordering the spec calls for between
// the slot write and the filled update. full reports whether this append
// was the one that brought the buffer to capacity.
func (b *DestinationBuffer) Append(srcID, destID uint64, kind Kind) (full bool, err error) {
	for {
		cur := b.size.Load()
		if cur >= b.capacity {
			return false, ErrBufferClosed
		}
		if b.size.CompareAndSwap(cur, cur+1) {
			b.slots[cur] = bufferEntry{srcID: srcID, destID: destID, kind: kind}
			n := b.filled.Add(1)
			return n == b.capacity, nil
		}
		runtime.Gosched()
	}
}

// Drain applies every claimed entry: onVertex(srcID, destID) for each
// KindVertex entry, onEdge(srcID, destID) for each KindEdge one. It must
// run on the buffer's owning locale; entries with kind KindNone (holes from
// a slot reserved but never observed as written) are skipped.
func (b *DestinationBuffer) Drain(onVertex, onEdge func(srcID, destID uint64)) {
	filled := b.filled.Load()
	for i := uint32(0); i < filled && i < uint32(len(b.slots)); i++ {
		e := b.slots[i]
		switch e.kind {
		case KindVertex:
			onVertex(e.srcID, e.destID)
		case KindEdge:
			onEdge(e.srcID, e.destID)
		}
	}
}

// Clear resets both atomics and zeroes every slot, reopening the buffer.
func (b *DestinationBuffer) Clear() {
	for i := range b.slots {
		b.slots[i] = bufferEntry{}
	}
	b.filled.Store(0)
	b.size.Store(0)
}

func (b *DestinationBuffer) Filled() uint32   { return b.filled.Load() }
func (b *DestinationBuffer) Size() uint32     { return b.size.Load() }
func (b *DestinationBuffer) Capacity() uint32 { return b.capacity }
