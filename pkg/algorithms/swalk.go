package algorithms

import (
	"context"
	"sort"
	"sync"

	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/hypergraph"
	"github.com/dd0wney/hypergraph/pkg/locality"
	"github.com/dd0wney/hypergraph/pkg/termination"
	"github.com/dd0wney/hypergraph/pkg/workqueue"
)

// swalkTask carries one edge discovered during an s-walk.
type swalkTask struct {
	edge hypergraph.Edge
}

// SWalkCommunity returns every hyperedge reachable from source by a chain
// of edges, each pair in the chain sharing at least s vertices. Two edges
// are "s-adjacent" iff the sorted intersection of their vertex lists has
// size >= s; this is the same sorted-array intersection primitive used
// elsewhere in the package, run over each candidate edge's EdgeNeighbors.
//
// Discovery runs on a single-locale workqueue.WorkQueue the same way BFS
// does: each dequeued edge enqueues its unvisited s-adjacent neighbors
// under the TerminationDetector's started/finished protocol.
func SWalkCommunity(ctx context.Context, g *hypergraph.AdjListHyperGraph, source hypergraph.Edge, s int) map[hypergraph.Edge]struct{} {
	wq := workqueue.New[swalkTask](1, 4, workqueue.NoAggregation, config.Default())
	td := termination.New()

	var mu sync.Mutex
	visited := map[hypergraph.Edge]struct{}{source: {}}

	sortedVertices := func(e hypergraph.Edge) []hypergraph.Vertex {
		vs := append([]hypergraph.Vertex(nil), g.EdgeNeighbors(e)...)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
		return vs
	}

	td.Started(1)
	wq.AddWork(swalkTask{edge: source}, 0, 0)

	_ = workqueue.DoWorkLoop(ctx, wq, td, locality.Locale(0), 4, func(_ context.Context, t swalkTask) error {
		ourVertices := sortedVertices(t.edge)
		candidates := make(map[hypergraph.Edge]struct{})
		for _, v := range ourVertices {
			for _, e := range g.Neighbors(v) {
				if e != t.edge {
					candidates[e] = struct{}{}
				}
			}
		}

		for candidate := range candidates {
			mu.Lock()
			_, seen := visited[candidate]
			mu.Unlock()
			if seen {
				continue
			}
			if IntersectionSizeAtLeast(ourVertices, sortedVertices(candidate), s) {
				mu.Lock()
				_, seenAgain := visited[candidate]
				if !seenAgain {
					visited[candidate] = struct{}{}
				}
				mu.Unlock()
				if !seenAgain {
					td.Started(1)
					wq.AddWork(swalkTask{edge: candidate}, 0, 0)
				}
			}
		}
		return nil
	})

	return visited
}
