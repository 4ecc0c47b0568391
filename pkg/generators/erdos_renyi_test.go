package generators

import (
	"math/rand"
	"testing"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
)

func TestErdosRenyi_FullDensityIsComplete(t *testing.T) {
	g := hypergraph.New(4, 4, 1)
	ErdosRenyi(g, ErdosRenyiParams{P: 1.0, CouponCollector: false})

	total := 0
	for v := uint64(0); v < 4; v++ {
		n := g.Neighbors(hypergraph.ToVertex(v))
		total += len(n)
		if len(n) != 4 {
			t.Fatalf("vertex %d: expected degree 4, got %d", v, len(n))
		}
	}
	if total != 16 {
		t.Fatalf("expected 16 inclusions total, got %d", total)
	}
}

func TestErdosRenyi_ZeroProbabilityInsertsNothing(t *testing.T) {
	g := hypergraph.New(4, 4, 1)
	ErdosRenyi(g, ErdosRenyiParams{P: 0.0, Rand: rand.New(rand.NewSource(1))})

	for v := uint64(0); v < 4; v++ {
		if n := g.Neighbors(hypergraph.ToVertex(v)); len(n) != 0 {
			t.Fatalf("vertex %d: expected degree 0, got %d", v, len(n))
		}
	}
}

func TestErdosRenyi_PartialDensityInsertsSomeBound(t *testing.T) {
	g := hypergraph.New(10, 10, 2)
	ErdosRenyi(g, ErdosRenyiParams{P: 0.3, Rand: rand.New(rand.NewSource(42))})

	total := 0
	for v := uint64(0); v < 10; v++ {
		total += len(g.Neighbors(hypergraph.ToVertex(v)))
	}
	if total == 0 || total > 100 {
		t.Fatalf("expected a plausible partial inclusion count, got %d", total)
	}
}
