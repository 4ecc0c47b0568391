package algorithms

import (
	"testing"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
)

func TestCountTriangles_SingleHyperedgeTripleFormsOneTriangle(t *testing.T) {
	g := hypergraph.New(3, 1, 1)
	g.AddInclusion(hypergraph.Vertex(0), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(1), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(2), hypergraph.Edge(0))

	if got := CountTriangles(g); got != 1 {
		t.Fatalf("expected 1 triangle in the 2-uniform projection of a 3-vertex hyperedge, got %d", got)
	}
}

func TestCountTriangles_TwoVertexEdgeFormsNoTriangle(t *testing.T) {
	g := hypergraph.New(2, 1, 1)
	g.AddInclusion(hypergraph.Vertex(0), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(1), hypergraph.Edge(0))

	if got := CountTriangles(g); got != 0 {
		t.Fatalf("expected 0 triangles, got %d", got)
	}
}

func TestCountTriangles_DisjointEdgesFormNoTriangle(t *testing.T) {
	g := hypergraph.New(4, 2, 1)
	g.AddInclusion(hypergraph.Vertex(0), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(1), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(2), hypergraph.Edge(1))
	g.AddInclusion(hypergraph.Vertex(3), hypergraph.Edge(1))

	if got := CountTriangles(g); got != 0 {
		t.Fatalf("expected 0 triangles across disjoint edges, got %d", got)
	}
}
