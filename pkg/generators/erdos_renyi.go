package generators

import (
	"math"
	"math/rand"
	"time"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// ErdosRenyiParams configures a single Erdős–Rényi generation pass.
type ErdosRenyiParams struct {
	// P is the per-(vertex,edge)-pair inclusion probability.
	P float64
	// CouponCollector applies the p' = ln(1/(1-p)) correction before
	// computing the target inclusion count, compensating for the
	// duplicate draws that uniform sampling produces.
	CouponCollector bool
	// Rand supplies randomness; a nil Rand uses the package default
	// source seeded from the current time.
	Rand *rand.Rand
}

// ErdosRenyi populates g with inclusions sampled under the Erdős–Rényi
// model: p == 1.0 is treated as the degenerate complete bipartite case and
// every (v, e) pair is inserted deterministically without sampling, per the
// contract that generateErdosRenyi(graph, p=1.0, couponCollector=false)
// yields exactly |V|*|E| inclusions with no duplicates possible. Otherwise
// the target inclusion count I = round(|V|*|E|*p') inclusions are sampled
// uniformly at random, deduplicated, and inserted via the buffered path.
func ErdosRenyi(g *hypergraph.AdjListHyperGraph, params ErdosRenyiParams) {
	start := time.Now()
	nv := g.NumVertices()
	ne := g.NumEdges()

	if params.P >= 1.0 {
		for v := uint64(0); v < nv; v++ {
			for e := uint64(0); e < ne; e++ {
				g.AddInclusionBuffered(hypergraph.ToVertex(v), hypergraph.ToEdge(e))
			}
		}
		g.FlushBuffers()
		metrics.DefaultRegistry().RecordGeneratorRun("erdos_renyi", time.Since(start), int(nv*ne), 0)
		return
	}

	p := params.P
	if params.CouponCollector && p < 1.0 {
		p = math.Log(1 / (1 - p))
	}

	target := int(math.Round(float64(nv) * float64(ne) * p))
	if target < 0 {
		target = 0
	}

	r := params.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	candidates := make([]inclusion, 0, target)
	for i := 0; i < target; i++ {
		if nv == 0 || ne == 0 {
			break
		}
		v := uint64(r.Int63n(int64(nv)))
		e := uint64(r.Int63n(int64(ne)))
		candidates = append(candidates, inclusion{v: v, e: e})
	}

	deduped, dropped := removeDuplicates(candidates)
	for _, c := range deduped {
		g.AddInclusionBuffered(hypergraph.ToVertex(c.v), hypergraph.ToEdge(c.e))
	}
	g.FlushBuffers()

	metrics.DefaultRegistry().RecordGeneratorRun("erdos_renyi", time.Since(start), len(deduped), dropped)
}
