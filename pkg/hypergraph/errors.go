package hypergraph

import "errors"

// ErrEdgeSpaceExhausted names the condition of needing more edge ids than
// the graph's domain provides. No function in this module returns it: an
// out-of-range edge makes AddInclusion and AddInclusionBuffered panic, and
// AddEdgeDomain grows the domain without returning an error. AddEdgeDomain
// must be called before generation to pre-size the domain; no generator
// grows the domain while it runs.
var ErrEdgeSpaceExhausted = errors.New("hypergraph: edge id space exhausted")
