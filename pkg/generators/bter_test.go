package generators

import (
	"testing"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
)

func TestBTER_InsertsWithinDomainBounds(t *testing.T) {
	g := hypergraph.New(8, 8, 2)
	degV := []float64{1, 1, 2, 2, 3, 3, 4, 4}
	degE := []float64{1, 1, 2, 2, 3, 3, 4, 4}

	BTER(g, BTERParams{DegreeV: degV, DegreeE: degE, BlockSize: 2, Seed: 3})

	for v := uint64(0); v < 8; v++ {
		if d := len(g.Neighbors(hypergraph.ToVertex(v))); d > 8 {
			t.Fatalf("vertex %d degree %d exceeds domain size", v, d)
		}
	}
}

func TestAffinityBlock_DensityClampedToUnitInterval(t *testing.T) {
	_, _, rho := affinityBlock(100, 100, 10, 10)
	if rho < 0 || rho > 1 {
		t.Fatalf("expected rho in [0,1], got %v", rho)
	}
}

func TestAffinityBlock_EmptyDomainIsZeroDensity(t *testing.T) {
	_, _, rho := affinityBlock(5, 5, 0, 0)
	if rho != 0 {
		t.Fatalf("expected rho 0 for empty domain, got %v", rho)
	}
}

func TestSortedIndices_OrdersAscending(t *testing.T) {
	idx := sortedIndices([]float64{3, 1, 2})
	want := []int{1, 2, 0}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("index %d: expected %d, got %d", i, want[i], idx[i])
		}
	}
}
