package visualization

import (
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Default spring layout constants.
const (
	DefaultIterations         = 50
	DefaultScale              = 1.0
	DefaultInitialTemperature = 0.1
	DefaultMinTemperature     = 0.001
	DefaultStiffness          = 1.0
)

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Iterations         int     // Fixed number of simulation steps
	Scale              float64 // Largest absolute coordinate after rescaling
	InitialTemperature float64 // Maximum displacement per step at the start
	MinTemperature     float64 // Floor the temperature cools down to
	Stiffness          float64 // Spring constant for edge attraction
}

// DefaultLayoutConfig returns the documented spring layout defaults.
func DefaultLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		Iterations:         DefaultIterations,
		Scale:              DefaultScale,
		InitialTemperature: DefaultInitialTemperature,
		MinTemperature:     DefaultMinTemperature,
		Stiffness:          DefaultStiffness,
	}
}

func (c *LayoutConfig) withDefaults() *LayoutConfig {
	out := *c
	if out.Iterations <= 0 {
		out.Iterations = DefaultIterations
	}
	if out.Scale <= 0 {
		out.Scale = DefaultScale
	}
	if out.InitialTemperature <= 0 {
		out.InitialTemperature = DefaultInitialTemperature
	}
	if out.MinTemperature <= 0 {
		out.MinTemperature = DefaultMinTemperature
	}
	if out.Stiffness <= 0 {
		out.Stiffness = DefaultStiffness
	}
	return &out
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g *graph.Graph) map[string]Position
}
