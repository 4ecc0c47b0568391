package algorithms

import (
	"context"
	"testing"
	"time"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
)

func TestBFS_DiscoversAllReachableVertices(t *testing.T) {
	g := hypergraph.New(4, 2, 1)
	// edge 0: {0,1}, edge 1: {1,2}. Vertex 3 is isolated.
	g.AddInclusion(hypergraph.Vertex(0), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(1), hypergraph.Edge(0))
	g.AddInclusion(hypergraph.Vertex(1), hypergraph.Edge(1))
	g.AddInclusion(hypergraph.Vertex(2), hypergraph.Edge(1))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depth := BFS(ctx, g, hypergraph.Vertex(0))

	if depth[hypergraph.Vertex(0)] != 0 {
		t.Fatalf("expected source depth 0, got %d", depth[hypergraph.Vertex(0)])
	}
	if depth[hypergraph.Vertex(1)] != 1 {
		t.Fatalf("expected vertex 1 depth 1, got %d", depth[hypergraph.Vertex(1)])
	}
	if depth[hypergraph.Vertex(2)] != 2 {
		t.Fatalf("expected vertex 2 depth 2, got %d", depth[hypergraph.Vertex(2)])
	}
	if _, ok := depth[hypergraph.Vertex(3)]; ok {
		t.Fatal("expected isolated vertex 3 to be unreached")
	}
}

func TestBFS_SingletonSourceOnly(t *testing.T) {
	g := hypergraph.New(3, 1, 1)
	g.AddInclusion(hypergraph.Vertex(0), hypergraph.Edge(0))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depth := BFS(ctx, g, hypergraph.Vertex(1))
	if len(depth) != 1 {
		t.Fatalf("expected only the source to be discovered, got %v", depth)
	}
}
