package generators

import (
	"math/rand"
	"sort"
	"time"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// BTERParams configures a BTER generation pass.
type BTERParams struct {
	// DegreeV, DegreeE are the target degree sequences, indexed by id
	// before sorting.
	DegreeV, DegreeE []float64
	// BlockSize is the number of vertices (and edges) grouped into each
	// affinity block before advancing to the next degree class.
	BlockSize int
	Seed      int64
}

// affinityBlock computes (nV, nE, rho) for one BTER block. nV and nE are
// returned unchanged; there is no case split on metamorphosis targets.
//
// The BTER density formula isn't given numerically anywhere reachable from
// this corpus; rho here is a judgment call (see DESIGN.md): the larger of
// the block's average vertex and edge degrees divided by the larger of the
// block's own dimensions nV and nE, clamped to [0, 1], rather than an
// inversion of a closed-form target metamorphosis coefficient.
func affinityBlock(blockDV, blockDE float64, nV, nE uint64) (outNV, outNE uint64, rho float64) {
	outNV, outNE = nV, nE
	maxDomain := nV
	if nE > maxDomain {
		maxDomain = nE
	}
	if maxDomain == 0 {
		return outNV, outNE, 0
	}
	maxDeg := blockDV
	if blockDE > maxDeg {
		maxDeg = blockDE
	}
	rho = maxDeg / float64(maxDomain)
	if rho > 1 {
		rho = 1
	}
	if rho < 0 {
		rho = 0
	}
	return outNV, outNE, rho
}

// BTER builds a hypergraph by sorting the target degree sequences
// ascending, walking degree-homogeneous affinity blocks and generating
// each at local density rho via Erdős–Rényi, then topping up residual
// degree with a Chung–Lu pass over the whole domain.
func BTER(g *hypergraph.AdjListHyperGraph, params BTERParams) {
	start := time.Now()

	sortedV := sortedIndices(params.DegreeV)
	sortedE := sortedIndices(params.DegreeE)

	blockSize := params.BlockSize
	if blockSize < 1 {
		blockSize = 1
	}

	rng := rand.New(rand.NewSource(params.Seed))
	totalInserted := 0

	vCursor, eCursor := 0, 0
	for vCursor < len(sortedV) && eCursor < len(sortedE) {
		vEnd := min(vCursor+blockSize, len(sortedV))
		eEnd := min(eCursor+blockSize, len(sortedE))

		blockDV := averageAt(params.DegreeV, sortedV[vCursor:vEnd])
		blockDE := averageAt(params.DegreeE, sortedE[eCursor:eEnd])

		blockNV := uint64(vEnd - vCursor)
		blockNE := uint64(eEnd - eCursor)
		_, _, rho := affinityBlock(blockDV, blockDE, blockNV, blockNE)

		for i := vCursor; i < vEnd; i++ {
			for j := eCursor; j < eEnd; j++ {
				if rho >= 1.0 || rng.Float64() < rho {
					v := sortedV[i]
					e := sortedE[j]
					g.AddInclusionBuffered(hypergraph.ToVertex(v), hypergraph.ToEdge(e))
					totalInserted++
				}
			}
		}

		vCursor = vEnd
		eCursor = eEnd
	}
	g.FlushBuffers()

	residualV := make([]float64, len(params.DegreeV))
	residualE := make([]float64, len(params.DegreeE))
	degreesV := g.GetVertexDegrees()
	degreesE := g.GetEdgeDegrees()
	for i, target := range params.DegreeV {
		if i < len(degreesV) {
			residualV[i] = max(0, target-float64(degreesV[i]))
		}
	}
	for i, target := range params.DegreeE {
		if i < len(degreesE) {
			residualE[i] = max(0, target-float64(degreesE[i]))
		}
	}

	residualTotal := 0.0
	for _, r := range residualV {
		residualTotal += r
	}
	if residualTotal > 0 {
		ChungLu(g, ChungLuParams{
			DegreeV:       residualV,
			DegreeE:       residualE,
			NumInclusions: int(residualTotal),
			Tasks:         4,
			Seed:          params.Seed + 1,
		})
	}

	metrics.DefaultRegistry().RecordGeneratorRun("bter", time.Since(start), totalInserted, 0)
}

func sortedIndices(weights []float64) []int {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return weights[idx[a]] < weights[idx[b]] })
	return idx
}

func averageAt(weights []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range indices {
		sum += weights[i]
	}
	return sum / float64(len(indices))
}

