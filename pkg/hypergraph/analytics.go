package hypergraph

// choose2 is n choose 2, the number of unordered pairs selectable from n
// items, used throughout butterfly counting.
func choose2(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// VertexNumButterflies counts four-cycles of the bipartite incidence graph
// anchored at v: for every vertex w reachable from v in two hops, C[w] is
// the number of edges v and w have in common, and the total is
// sum_w choose(C[w], 2).
func (g *AdjListHyperGraph) VertexNumButterflies(v Vertex) uint64 {
	g.checkVertex(v)
	counts := make(map[Vertex]uint64)
	for _, e := range g.vertexData[v].Iterate() {
		for _, w := range g.edgeData[e].Iterate() {
			if w == v {
				continue
			}
			counts[w]++
		}
	}
	var total uint64
	for _, c := range counts {
		total += choose2(c)
	}
	return total
}

// EdgeNumButterflies is the symmetric count anchored at an edge: for every
// edge f reachable from e in two hops, C[f] is the number of vertices e and
// f share, and the total is sum_f choose(C[f], 2).
func (g *AdjListHyperGraph) EdgeNumButterflies(e Edge) uint64 {
	g.checkEdge(e)
	counts := make(map[Edge]uint64)
	for _, v := range g.edgeData[e].Iterate() {
		for _, f := range g.vertexData[v].Iterate() {
			if f == e {
				continue
			}
			counts[f]++
		}
	}
	var total uint64
	for _, c := range counts {
		total += choose2(c)
	}
	return total
}

// InclusionNumButterflies counts the butterflies that pass through the
// specific inclusion (v, e): for every other vertex w sharing e with v,
// each of the C[w]-1 other edges v and w have in common (besides e itself)
// closes a four-cycle anchored at this inclusion.
func (g *AdjListHyperGraph) InclusionNumButterflies(v Vertex, e Edge) uint64 {
	g.checkVertex(v)
	g.checkEdge(e)

	commonEdges := make(map[Vertex]uint64)
	for _, e2 := range g.vertexData[v].Iterate() {
		for _, w := range g.edgeData[e2].Iterate() {
			if w == v {
				continue
			}
			commonEdges[w]++
		}
	}

	var total uint64
	for _, w := range g.edgeData[e].Iterate() {
		if w == v {
			continue
		}
		if c := commonEdges[w]; c >= 1 {
			total += c - 1
		}
	}
	return total
}

// InclusionNumCaterpillars counts open four-paths through the inclusion
// (v, e): (deg(v)-1) * (deg(e)-1).
func (g *AdjListHyperGraph) InclusionNumCaterpillars(v Vertex, e Edge) uint64 {
	g.checkVertex(v)
	g.checkEdge(e)
	dv := uint64(g.vertexData[v].NumNeighbors())
	de := uint64(g.edgeData[e].NumNeighbors())
	if dv == 0 || de == 0 {
		return 0
	}
	return (dv - 1) * (de - 1)
}

// InclusionMetamorphCoef is butterflies per caterpillar through (v, e), a
// local clustering measure; it is 0 when the caterpillar count is 0.
func (g *AdjListHyperGraph) InclusionMetamorphCoef(v Vertex, e Edge) float64 {
	caterpillars := g.InclusionNumCaterpillars(v, e)
	if caterpillars == 0 {
		return 0
	}
	butterflies := g.InclusionNumButterflies(v, e)
	return float64(butterflies) / float64(caterpillars)
}

// VertexPerDegreeMetamorphosisCoefficients groups vertices by degree and
// reports, for each degree class, the mean InclusionMetamorphCoef over all
// of that class's inclusions.
func (g *AdjListHyperGraph) VertexPerDegreeMetamorphosisCoefficients() map[int]float64 {
	byDegree := make(map[int][]Vertex)
	for i, nd := range g.vertexData {
		d := nd.NumNeighbors()
		byDegree[d] = append(byDegree[d], Vertex(i))
	}

	result := make(map[int]float64, len(byDegree))
	for d, vs := range byDegree {
		var sum float64
		var n int
		for _, v := range vs {
			for _, e := range g.vertexData[v].Iterate() {
				sum += g.InclusionMetamorphCoef(v, e)
				n++
			}
		}
		if n > 0 {
			result[d] = sum / float64(n)
		}
	}
	return result
}

// EdgePerDegreeMetamorphosisCoefficients is the edge-side symmetric
// counterpart of VertexPerDegreeMetamorphosisCoefficients.
func (g *AdjListHyperGraph) EdgePerDegreeMetamorphosisCoefficients() map[int]float64 {
	byDegree := make(map[int][]Edge)
	for i, nd := range g.edgeData {
		d := nd.NumNeighbors()
		byDegree[d] = append(byDegree[d], Edge(i))
	}

	result := make(map[int]float64, len(byDegree))
	for d, es := range byDegree {
		var sum float64
		var n int
		for _, e := range es {
			for _, v := range g.edgeData[e].Iterate() {
				sum += g.InclusionMetamorphCoef(v, e)
				n++
			}
		}
		if n > 0 {
			result[d] = sum / float64(n)
		}
	}
	return result
}
