package hypergraph

import (
	"sort"
	"sync/atomic"

	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// NodeData is the incidence list for a single vertex or edge: a dynamic,
// lazily sorted sequence of neighbor descriptors guarded by a
// test-and-test-and-set spinlock. N is Edge for a vertex-side NodeData and
// Vertex for an edge-side one.
type NodeData[N ~uint64] struct {
	lock             spinlock
	neighbors        []N
	isSorted         bool
	neighborListSize atomic.Uint64
}

// NewNodeData returns an empty NodeData with room for capacity neighbors
// before its first backing-slice growth.
func NewNodeData[N ~uint64](capacity int) *NodeData[N] {
	return &NodeData[N]{neighbors: make([]N, 0, capacity)}
}

// AddNeighbors appends ns under the spinlock in amortized O(len(ns)) time.
// It is safe to call concurrently with other writers on the same NodeData,
// but not with a concurrent Iterate or HasNeighbor caller that assumes a
// stable slice.
func (nd *NodeData[N]) AddNeighbors(ns ...N) {
	if len(ns) == 0 {
		return
	}
	nd.lock.Lock()
	nd.neighbors = append(nd.neighbors, ns...)
	nd.isSorted = false
	nd.neighborListSize.Store(uint64(len(nd.neighbors)))
	nd.lock.Unlock()
}

// HasNeighbor reports whether n is present, sorting the backing slice
// lazily if it has been mutated since the last sort.
func (nd *NodeData[N]) HasNeighbor(n N) bool {
	nd.lock.Lock()
	defer nd.lock.Unlock()
	if !nd.isSorted {
		sort.Slice(nd.neighbors, func(i, j int) bool { return nd.neighbors[i] < nd.neighbors[j] })
		nd.isSorted = true
		metrics.DefaultRegistry().VertexNeighborListSorts.Inc()
	}
	i := sort.Search(len(nd.neighbors), func(i int) bool { return nd.neighbors[i] >= n })
	return i < len(nd.neighbors) && nd.neighbors[i] == n
}

// NumNeighbors is a lock-free read of the logical neighbor count; it stays
// accurate even for a reader that skips the lock entirely.
func (nd *NodeData[N]) NumNeighbors() int {
	return int(nd.neighborListSize.Load())
}

// Iterate returns the underlying neighbor slice. The caller is responsible
// for avoiding concurrent writes during iteration.
func (nd *NodeData[N]) Iterate() []N {
	return nd.neighbors
}

// ContentionCount reports the number of failed spinlock fast-path acquires,
// exposed for diagnostics only.
func (nd *NodeData[N]) ContentionCount() uint64 {
	return nd.lock.Contention()
}
