package visualization

import (
	"math"
	"math/rand/v2"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// minDistance keeps repulsion finite for near-coincident nodes.
const minDistance = 0.01

// SpringLayout implements a Fruchterman-Reingold style force-directed layout.
// Every pair of nodes repels with k²/d, every edge pulls its endpoints
// together with Stiffness·d, and k = 1/√N. Moves are clamped to a temperature
// that cools linearly from InitialTemperature towards MinTemperature over a
// fixed number of iterations.
//
// Initial positions come from the layout's own generator, so a layout built
// from a given seed produces the same coordinates for the same graph. Each
// ComputeLayout call consumes the generator; build a fresh layout per run to
// reproduce a result.
type SpringLayout struct {
	config *LayoutConfig
	rng    *rand.Rand
}

// NewSpringLayout creates a spring layout seeded deterministically from seed.
func NewSpringLayout(config *LayoutConfig, seed uint64) *SpringLayout {
	return NewSpringLayoutWithRand(config, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewSpringLayoutWithRand creates a spring layout drawing initial positions from rng.
func NewSpringLayoutWithRand(config *LayoutConfig, rng *rand.Rand) *SpringLayout {
	if config == nil {
		config = DefaultLayoutConfig()
	}
	return &SpringLayout{config: config.withDefaults(), rng: rng}
}

// ComputeLayout computes positions using force-directed algorithm
func (sl *SpringLayout) ComputeLayout(g *graph.Graph) map[string]Position {
	n := g.NodeCount()
	if n == 0 {
		return make(map[string]Position)
	}

	// Single node - center it
	if n == 1 {
		return map[string]Position{g.Label(0): {X: 0, Y: 0}}
	}

	// Initialize random positions in the unit square
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = sl.rng.Float64()
		ys[i] = sl.rng.Float64()
	}

	k := math.Sqrt(1.0 / float64(n)) // Optimal distance
	temperature := sl.config.InitialTemperature
	cooling := temperature / float64(sl.config.Iterations+1)

	forceX := make([]float64, n)
	forceY := make([]float64, n)

	for iter := 0; iter < sl.config.Iterations; iter++ {
		for i := range forceX {
			forceX[i] = 0
			forceY[i] = 0
		}

		// Repulsion between all nodes
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < minDistance {
					dist = minDistance
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forceX[i] += fx
				forceY[i] += fy
				forceX[j] -= fx
				forceY[j] -= fy
			}
		}

		// Attraction between connected nodes
		for _, e := range g.EdgeIndices() {
			a, b := e[0], e[1]
			dx := xs[a] - xs[b]
			dy := ys[a] - ys[b]
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < minDistance {
				continue
			}

			force := sl.config.Stiffness * dist
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forceX[a] -= fx
			forceY[a] -= fy
			forceX[b] += fx
			forceY[b] += fy
		}

		// Apply forces, clamped to the current temperature
		for i := 0; i < n; i++ {
			force := math.Sqrt(forceX[i]*forceX[i] + forceY[i]*forceY[i])
			if force > 0 {
				step := math.Min(force, temperature)
				xs[i] += (forceX[i] / force) * step
				ys[i] += (forceY[i] / force) * step
			}
		}

		temperature = math.Max(temperature-cooling, sl.config.MinTemperature)
	}

	rescale(xs, ys, sl.config.Scale)

	positions := make(map[string]Position, n)
	for i := 0; i < n; i++ {
		positions[g.Label(i)] = Position{X: xs[i], Y: ys[i]}
	}
	return positions
}
