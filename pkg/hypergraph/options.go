package hypergraph

import (
	"github.com/dd0wney/hypergraph/pkg/config"
	"github.com/dd0wney/hypergraph/pkg/logging"
	"github.com/dd0wney/hypergraph/pkg/metrics"
)

// Option configures an AdjListHyperGraph at construction time.
type Option func(*AdjListHyperGraph)

// WithConfig overrides the default engine configuration, most notably the
// per-locale DestinationBuffer capacity.
func WithConfig(cfg config.Params) Option {
	return func(g *AdjListHyperGraph) { g.cfg = cfg }
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(g *AdjListHyperGraph) { g.logger = l }
}

// WithMetrics attaches a metrics registry; the default is the global
// DefaultRegistry.
func WithMetrics(m *metrics.Registry) Option {
	return func(g *AdjListHyperGraph) { g.metrics = m }
}
