package hypergraph

import (
	"math/rand"
	"sort"
	"testing"
)

func TestAddInclusion_VisibleOnBothSides(t *testing.T) {
	g := New(4, 4, 1)
	g.AddInclusion(Vertex(0), Edge(1))

	if !contains(g.Neighbors(Vertex(0)), Edge(1)) {
		t.Error("expected edge 1 in vertex 0's neighbors")
	}
	if !containsVertex(g.EdgeNeighbors(Edge(1)), Vertex(0)) {
		t.Error("expected vertex 0 in edge 1's neighbors")
	}
}

func TestAddInclusionBuffered_VisibleAfterFlush(t *testing.T) {
	g := New(8, 8, 3)
	for v := uint64(0); v < 8; v++ {
		g.AddInclusionBuffered(Vertex(v), Edge((v+1)%8))
	}
	g.FlushBuffers()

	for v := uint64(0); v < 8; v++ {
		e := Edge((v + 1) % 8)
		if !contains(g.Neighbors(Vertex(v)), e) {
			t.Errorf("vertex %d missing edge %d after flush", v, e)
		}
		if !containsVertex(g.EdgeNeighbors(e), Vertex(v)) {
			t.Errorf("edge %d missing vertex %d after flush", e, v)
		}
	}
}

func TestBufferedVsDirectEquivalence(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]uint64, n)
	for i := range pairs {
		pairs[i] = [2]uint64{uint64(rng.Intn(20)), uint64(rng.Intn(20))}
	}

	direct := New(20, 20, 1)
	for _, p := range pairs {
		direct.AddInclusion(Vertex(p[0]), Edge(p[1]))
	}

	buffered := New(20, 20, 4)
	for _, p := range pairs {
		buffered.AddInclusionBuffered(Vertex(p[0]), Edge(p[1]))
	}
	buffered.FlushBuffers()

	for v := uint64(0); v < 20; v++ {
		a := sortedEdges(direct.Neighbors(Vertex(v)))
		b := sortedEdges(buffered.Neighbors(Vertex(v)))
		if !equalEdges(a, b) {
			t.Fatalf("vertex %d: direct=%v buffered=%v", v, a, b)
		}
	}
	for e := uint64(0); e < 20; e++ {
		a := sortedVertices(direct.EdgeNeighbors(Edge(e)))
		b := sortedVertices(buffered.EdgeNeighbors(Edge(e)))
		if !equalVertices(a, b) {
			t.Fatalf("edge %d: direct=%v buffered=%v", e, a, b)
		}
	}
}

func TestButterflies_K23(t *testing.T) {
	g := New(2, 3, 1)
	for v := uint64(0); v < 2; v++ {
		for e := uint64(0); e < 3; e++ {
			g.AddInclusion(Vertex(v), Edge(e))
		}
	}

	for v := Vertex(0); v < 2; v++ {
		if got := g.VertexNumButterflies(v); got != 3 {
			t.Errorf("VertexNumButterflies(%d) = %d, want 3", v, got)
		}
	}
}

func TestInclusionNumCaterpillars(t *testing.T) {
	g := New(2, 2, 1)
	g.AddInclusion(Vertex(0), Edge(0))
	g.AddInclusion(Vertex(0), Edge(1))
	g.AddInclusion(Vertex(1), Edge(0))

	// deg(v0) = 2, deg(e0) = 2 -> (2-1)*(2-1) = 1
	if got := g.InclusionNumCaterpillars(Vertex(0), Edge(0)); got != 1 {
		t.Errorf("InclusionNumCaterpillars(0,0) = %d, want 1", got)
	}
}

func TestMetamorphCoefZeroWhenNoCaterpillars(t *testing.T) {
	g := New(2, 2, 1)
	g.AddInclusion(Vertex(0), Edge(0))
	if got := g.InclusionMetamorphCoef(Vertex(0), Edge(0)); got != 0 {
		t.Errorf("InclusionMetamorphCoef = %f, want 0", got)
	}
}

func TestOutOfRangeVertexPanics(t *testing.T) {
	g := New(2, 2, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range vertex")
		}
	}()
	g.AddInclusion(Vertex(5), Edge(0))
}

func TestAddEdgeDomainGrows(t *testing.T) {
	g := New(2, 2, 1)
	g.AddEdgeDomain(3)
	if g.NumEdges() != 5 {
		t.Fatalf("NumEdges() = %d, want 5", g.NumEdges())
	}
	g.AddInclusion(Vertex(0), Edge(4))
	if !contains(g.Neighbors(Vertex(0)), Edge(4)) {
		t.Error("expected edge 4 reachable after domain growth")
	}
}

func contains(es []Edge, target Edge) bool {
	for _, e := range es {
		if e == target {
			return true
		}
	}
	return false
}

func containsVertex(vs []Vertex, target Vertex) bool {
	for _, v := range vs {
		if v == target {
			return true
		}
	}
	return false
}

func sortedEdges(es []Edge) []Edge {
	out := append([]Edge(nil), es...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedVertices(vs []Vertex) []Vertex {
	out := append([]Vertex(nil), vs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalEdges(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
