package generators

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dd0wney/hypergraph/pkg/hypergraph"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// prefixSum turns a slice of non-negative weights into a normalized
// cumulative-sum table P with P[0]=0 and P[len(weights)]=1, suitable for
// GetRandomElement.
func prefixSum(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	probs := make([]float64, len(weights)+1)
	if total <= 0 {
		for i := range probs {
			probs[i] = float64(i) / float64(len(probs)-1)
		}
		return probs
	}
	running := 0.0
	for i, w := range weights {
		running += w
		probs[i+1] = running / total
	}
	probs[len(probs)-1] = 1.0
	return probs
}

// ChungLuParams configures a Chung–Lu generation pass.
type ChungLuParams struct {
	// DegreeV, DegreeE are the target degree sequences for the vertex
	// and edge domains, indexed by id.
	DegreeV, DegreeE []float64
	// NumInclusions is the total number of (v, e) pairs to sample,
	// I, split evenly across Tasks parallel workers.
	NumInclusions int
	// Tasks is the number of concurrent sampling workers. Each gets its
	// own *rand.Rand stream seeded from Seed + task index so that runs
	// are reproducible without workers contending on a shared source.
	Tasks int
	Seed  int64
}

// ChungLu samples NumInclusions (v, e) pairs from the prefix sums of
// DegreeV and DegreeE using GetRandomElement, splitting the work evenly
// across Tasks parallel goroutines with independent RNG streams, then
// inserts the deduplicated result via the buffered path.
func ChungLu(g *hypergraph.AdjListHyperGraph, params ChungLuParams) {
	start := time.Now()

	pV := prefixSum(params.DegreeV)
	pE := prefixSum(params.DegreeE)
	vElems := identityElements(len(params.DegreeV))
	eElems := identityElements(len(params.DegreeE))

	tasks := params.Tasks
	if tasks < 1 {
		tasks = 1
	}
	total := params.NumInclusions
	if total < 0 {
		total = 0
	}
	perTask := total / tasks
	remainder := total % tasks

	results := make([][]inclusion, tasks)
	var wg sync.WaitGroup
	for t := 0; t < tasks; t++ {
		n := perTask
		if t < remainder {
			n++
		}
		wg.Add(1)
		go func(taskIdx, count int) {
			defer wg.Done()
			if count == 0 {
				return
			}
			rng := rand.New(rand.NewSource(params.Seed + int64(taskIdx)))
			local := make([]inclusion, 0, count)
			for i := 0; i < count; i++ {
				v, errV := GetRandomElement(vElems, pV, rng.Float64())
				e, errE := GetRandomElement(eElems, pE, rng.Float64())
				if errV != nil || errE != nil {
					continue
				}
				local = append(local, inclusion{v: uint64(v), e: uint64(e)})
			}
			results[taskIdx] = local
		}(t, n)
	}
	wg.Wait()

	var candidates []inclusion
	for _, r := range results {
		candidates = append(candidates, r...)
	}

	deduped, dropped := removeDuplicates(candidates)
	for _, c := range deduped {
		g.AddInclusionBuffered(hypergraph.ToVertex(c.v), hypergraph.ToEdge(c.e))
	}
	g.FlushBuffers()

	metrics.DefaultRegistry().RecordGeneratorRun("chung_lu", time.Since(start), len(deduped), dropped)
}

func identityElements(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
