package visualization

import (
	"math"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// CircularLayout arranges nodes in a circle
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config == nil {
		config = DefaultLayoutConfig()
	}
	return &CircularLayout{config: config.withDefaults()}
}

// ComputeLayout places nodes on a circle of radius Scale in graph order,
// starting on the positive X axis.
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) map[string]Position {
	n := g.NodeCount()
	positions := make(map[string]Position, n)

	if n == 0 {
		return positions
	}
	if n == 1 {
		positions[g.Label(0)] = Position{X: 0, Y: 0}
		return positions
	}

	radius := cl.config.Scale
	angleStep := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		angle := float64(i) * angleStep
		positions[g.Label(i)] = Position{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}

	return positions
}
