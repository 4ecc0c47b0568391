package algorithms

import (
	"sort"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
)

// projectedNeighbors returns v's neighbors in the 2-uniform projection:
// every vertex that shares at least one hyperedge with v, deduplicated and
// sorted so the result can feed Intersection directly.
func projectedNeighbors(g *hypergraph.AdjListHyperGraph, v hypergraph.Vertex) []hypergraph.Vertex {
	seen := make(map[hypergraph.Vertex]struct{})
	for _, e := range g.Neighbors(v) {
		for _, w := range g.EdgeNeighbors(e) {
			if w != v {
				seen[w] = struct{}{}
			}
		}
	}
	out := make([]hypergraph.Vertex, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CountTriangles counts triangles in the 2-uniform projection of g: the
// simple graph where two vertices are adjacent iff they co-occur in some
// hyperedge. For each vertex v, it intersects v's projected neighborhood
// against each neighbor w > v's projected neighborhood and counts shared
// neighbors u > w, so every triangle {v, w, u} is counted exactly once.
func CountTriangles(g *hypergraph.AdjListHyperGraph) uint64 {
	vertices := g.GetVertices()
	neighbors := make(map[hypergraph.Vertex][]hypergraph.Vertex, len(vertices))
	for _, v := range vertices {
		neighbors[v] = projectedNeighbors(g, v)
	}

	var total uint64
	for _, v := range vertices {
		for _, w := range neighbors[v] {
			if w <= v {
				continue
			}
			for _, u := range Intersection(neighbors[v], neighbors[w]) {
				if u > w {
					total++
				}
			}
		}
	}
	return total
}
