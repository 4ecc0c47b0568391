package hypergraph

import (
	"fmt"
	"sync"
	"time"

	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/locality"
	"github.com/dd0wney/hypergraph/pkg/logging"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// AdjListHyperGraph is the adjacency-list hypergraph store: independent
// vertex and edge id domains, each backed by an array of NodeData, plus one
// DestinationBuffer per locale for batched cross-locale inclusion writes.
type AdjListHyperGraph struct {
	numVertices uint64
	numEdges    uint64

	vertexData []*NodeData[Edge]
	edgeData   []*NodeData[Vertex]

	dist    locality.Distribution
	buffers []*DestinationBuffer // one per locale

	privatizationID uint64
	registry        *locality.Registry

	metrics *metrics.Registry
	logger  logging.Logger
	cfg     config.Params

	mu sync.Mutex // guards growth of edgeData/vertexData (AddEdgeDomain)
}

// localeHandle is the per-locale privatized view of the graph: in this
// single-process engine it is a thin marker rather than a cache of raw
// pointers, but it is what non-zero locales would hold a reference back to
// locale 0's master handle through in a true distributed build.
type localeHandle struct {
	locale locality.Locale
	graph  *AdjListHyperGraph
}

// New constructs an AdjListHyperGraph over numVertices vertices and
// numEdges edges, distributing ownership across numLocales locales via a
// BlockDistribution.
func New(numVertices, numEdges uint64, numLocales int, opts ...Option) *AdjListHyperGraph {
	g := &AdjListHyperGraph{
		numVertices: numVertices,
		numEdges:    numEdges,
		cfg:         config.Default(),
		metrics:     metrics.DefaultRegistry(),
		logger:      logging.NewNopLogger(),
		registry:    locality.NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if numLocales < 1 {
		numLocales = 1
	}
	g.dist = locality.NewBlockDistribution(numLocales, numVertices, numEdges)

	g.vertexData = make([]*NodeData[Edge], numVertices)
	for i := range g.vertexData {
		g.vertexData[i] = NewNodeData[Edge](0)
	}
	g.edgeData = make([]*NodeData[Vertex], numEdges)
	for i := range g.edgeData {
		g.edgeData[i] = NewNodeData[Vertex](0)
	}

	g.buffers = make([]*DestinationBuffer, numLocales)
	for i := range g.buffers {
		g.buffers[i] = NewDestinationBuffer(g.cfg.DestinationBufferCapacity)
	}

	handles := make([]any, numLocales)
	for i := range handles {
		handles[i] = &localeHandle{locale: locality.Locale(i), graph: g}
	}
	g.privatizationID = g.registry.Privatize(handles)

	g.logger.Info("hypergraph constructed",
		logging.Uint64("num_vertices", numVertices),
		logging.Uint64("num_edges", numEdges),
		logging.Int("num_locales", numLocales),
	)

	return g
}

// NumVertices returns the size of the vertex id domain.
func (g *AdjListHyperGraph) NumVertices() uint64 { return g.numVertices }

// NumEdges returns the size of the edge id domain.
func (g *AdjListHyperGraph) NumEdges() uint64 { return g.numEdges }

// PrivatizationID returns the id assigned to this graph's per-locale
// handles in the privatization registry.
func (g *AdjListHyperGraph) PrivatizationID() uint64 { return g.privatizationID }

func (g *AdjListHyperGraph) checkVertex(v Vertex) {
	if uint64(v) >= g.numVertices {
		panic(fmt.Sprintf("hypergraph: vertex %d out of range [0,%d)", v, g.numVertices))
	}
}

func (g *AdjListHyperGraph) checkEdge(e Edge) {
	if uint64(e) >= g.numEdges {
		panic(fmt.Sprintf("hypergraph: edge %d out of range [0,%d)", e, g.numEdges))
	}
}

// AddInclusion directly appends the inclusion to both sides' NodeData,
// acquiring each lock in turn. Correct but high-latency across locales --
// prefer AddInclusionBuffered for bulk construction.
func (g *AdjListHyperGraph) AddInclusion(v Vertex, e Edge) {
	g.checkVertex(v)
	g.checkEdge(e)
	start := time.Now()
	g.vertexData[v].AddNeighbors(e)
	g.edgeData[e].AddNeighbors(v)
	if g.metrics != nil {
		g.metrics.RecordInclusion("vertex", "direct", time.Since(start))
	}
}

// AddInclusionBuffered routes each half of the inclusion to its owning
// locale's DestinationBuffer, draining and clearing a buffer immediately
// when an append fills or finds it already closed.
func (g *AdjListHyperGraph) AddInclusionBuffered(v Vertex, e Edge) {
	g.checkVertex(v)
	g.checkEdge(e)
	start := time.Now()

	vLoc := g.dist.OwnerOfVertex(uint64(v))
	g.appendAndMaybeDrain(vLoc, uint64(v), uint64(e), KindVertex)

	eLoc := g.dist.OwnerOfEdge(uint64(e))
	g.appendAndMaybeDrain(eLoc, uint64(e), uint64(v), KindEdge)

	if g.metrics != nil {
		g.metrics.RecordInclusion("vertex", "buffered", time.Since(start))
	}
}

func (g *AdjListHyperGraph) appendAndMaybeDrain(loc locality.Locale, srcID, destID uint64, kind Kind) {
	full, err := g.buffers[loc].Append(srcID, destID, kind)
	if err == ErrBufferClosed {
		if g.metrics != nil {
			g.metrics.RecordBufferClosed()
		}
		g.drainAndClear(loc)
		if full, err = g.buffers[loc].Append(srcID, destID, kind); err != nil {
			panic(fmt.Sprintf("hypergraph: destination buffer for %v still closed immediately after drain", loc))
		}
	}
	if full {
		g.drainAndClear(loc)
	}
}

func (g *AdjListHyperGraph) drainAndClear(loc locality.Locale) {
	start := time.Now()
	buf := g.buffers[loc]
	buf.Drain(
		func(srcID, destID uint64) { g.vertexData[srcID].AddNeighbors(Edge(destID)) },
		func(srcID, destID uint64) { g.edgeData[srcID].AddNeighbors(Vertex(destID)) },
	)
	buf.Clear()
	if g.metrics != nil {
		g.metrics.RecordBufferFlush(loc.String(), time.Since(start))
	}
}

// FlushBuffers drains and clears every locale's DestinationBuffer in
// parallel. This is the quiescence barrier callers must invoke after a
// generator finishes issuing buffered inclusions.
func (g *AdjListHyperGraph) FlushBuffers() {
	var wg sync.WaitGroup
	for i := range g.buffers {
		loc := locality.Locale(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.drainAndClear(loc)
		}()
	}
	wg.Wait()
}

// GetVertices returns every vertex descriptor in the domain.
func (g *AdjListHyperGraph) GetVertices() []Vertex {
	vs := make([]Vertex, g.numVertices)
	for i := range vs {
		vs[i] = Vertex(i)
	}
	return vs
}

// GetEdges returns every edge descriptor in the domain.
func (g *AdjListHyperGraph) GetEdges() []Edge {
	es := make([]Edge, g.numEdges)
	for i := range es {
		es[i] = Edge(i)
	}
	return es
}

// Neighbors returns the edges incident to v. Not safe if the graph is
// mutated concurrently with the call.
func (g *AdjListHyperGraph) Neighbors(v Vertex) []Edge {
	g.checkVertex(v)
	return g.vertexData[v].Iterate()
}

// EdgeNeighbors returns the vertices incident to e.
func (g *AdjListHyperGraph) EdgeNeighbors(e Edge) []Vertex {
	g.checkEdge(e)
	return g.edgeData[e].Iterate()
}

// GetVertexDegrees returns the degree of every vertex, indexed by id. Not
// safe if the graph is mutated concurrently.
func (g *AdjListHyperGraph) GetVertexDegrees() []int {
	out := make([]int, len(g.vertexData))
	for i, nd := range g.vertexData {
		out[i] = nd.NumNeighbors()
	}
	return out
}

// GetEdgeDegrees returns the degree of every edge, indexed by id.
func (g *AdjListHyperGraph) GetEdgeDegrees() []int {
	out := make([]int, len(g.edgeData))
	for i, nd := range g.edgeData {
		out[i] = nd.NumNeighbors()
	}
	return out
}

// ForEachVertexDegree invokes fn with every (vertex, degree) pair.
func (g *AdjListHyperGraph) ForEachVertexDegree(fn func(Vertex, int)) {
	for i, nd := range g.vertexData {
		fn(Vertex(i), nd.NumNeighbors())
	}
}

// ForEachEdgeDegree invokes fn with every (edge, degree) pair.
func (g *AdjListHyperGraph) ForEachEdgeDegree(fn func(Edge, int)) {
	for i, nd := range g.edgeData {
		fn(Edge(i), nd.NumNeighbors())
	}
}

// VerticesWithDegree returns every vertex whose current degree equals d.
func (g *AdjListHyperGraph) VerticesWithDegree(d int) []Vertex {
	var out []Vertex
	for i, nd := range g.vertexData {
		if nd.NumNeighbors() == d {
			out = append(out, Vertex(i))
		}
	}
	return out
}

// EdgesWithDegree returns every edge whose current degree equals d.
func (g *AdjListHyperGraph) EdgesWithDegree(d int) []Edge {
	var out []Edge
	for i, nd := range g.edgeData {
		if nd.NumNeighbors() == d {
			out = append(out, Edge(i))
		}
	}
	return out
}

// AddEdgeDomain grows the edge id domain by count, extending the edge
// NodeData array. Generators that need more edges than the graph was
// constructed with must call this before generating -- growing the domain
// mid-generation is out of scope.
func (g *AdjListHyperGraph) AddEdgeDomain(count uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := uint64(0); i < count; i++ {
		g.edgeData = append(g.edgeData, NewNodeData[Vertex](0))
	}
	g.numEdges += count
}
