package algorithms

import (
	"context"
	"sync"

	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/hypergraph"
	"github.com/dd0wney/hypergraph/pkg/locality"
	"github.com/dd0wney/hypergraph/pkg/termination"
	"github.com/dd0wney/hypergraph/pkg/workqueue"
)

// bfsTask is a work item carrying one vertex's discovery depth across the
// bipartite vertex/edge incidence graph.
type bfsTask struct {
	vertex hypergraph.Vertex
	depth  int
}

// BFS runs a breadth-first search over g's bipartite incidence structure,
// starting from source, and returns the discovery depth of every reached
// vertex (edges are traversed through but not themselves recorded). It
// drives a single-locale workqueue.WorkQueue and a termination.Detector the
// same way the engine's recursive work generators do: started is
// incremented before a task is enqueued and finished after its handler
// completes, so quiescence implies every reachable vertex has been
// discovered.
func BFS(ctx context.Context, g *hypergraph.AdjListHyperGraph, source hypergraph.Vertex) map[hypergraph.Vertex]int {
	wq := workqueue.New[bfsTask](1, 4, workqueue.NoAggregation, config.Default())
	td := termination.New()

	var mu sync.Mutex
	depth := make(map[hypergraph.Vertex]int)
	depth[source] = 0

	var visitedEdges sync.Map // hypergraph.Edge -> struct{}

	td.Started(1)
	wq.AddWork(bfsTask{vertex: source, depth: 0}, 0, 0)

	_ = workqueue.DoWorkLoop(ctx, wq, td, locality.Locale(0), 4, func(_ context.Context, t bfsTask) error {
		for _, e := range g.Neighbors(t.vertex) {
			if _, already := visitedEdges.LoadOrStore(e, struct{}{}); already {
				continue
			}
			for _, w := range g.EdgeNeighbors(e) {
				mu.Lock()
				_, seen := depth[w]
				if !seen {
					depth[w] = t.depth + 1
				}
				mu.Unlock()
				if !seen {
					td.Started(1)
					wq.AddWork(bfsTask{vertex: w, depth: t.depth + 1}, 0, 0)
				}
			}
		}
		return nil
	})

	return depth
}
