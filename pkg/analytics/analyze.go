package analytics

import (
	"context"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/logging"
)

// DefaultSeed is the layout seed used when callers have no preference.
const DefaultSeed uint64 = 42

// BuildGraph constructs and seals a graph from labels and label pairs.
// It fails with the graph package's construction errors.
func BuildGraph(nodes []string, edges []graph.Edge) (*graph.Graph, error) {
	return graph.Build(nodes, edges)
}

// Analyze runs every analysis sequentially with default options. It is a pure
// function of (g, seed) and never fails on a valid graph.
func Analyze(g *graph.Graph, seed uint64) *Report {
	e := &Engine{opts: DefaultOptions(), logger: logging.NewNopLogger()}
	report, _ := e.Analyze(context.Background(), g, seed)
	return report
}
