package visualization

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph/graphtest"
)

func distance(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TestSpringLayout tests the force-directed layout algorithm
func TestSpringLayout(t *testing.T) {
	g := graphtest.MustBuild([]string{"Alice", "Bob", "Charlie"},
		[2]string{"Alice", "Bob"}, [2]string{"Bob", "Charlie"})

	positions := NewSpringLayout(DefaultLayoutConfig(), 42).ComputeLayout(g)

	require.Len(t, positions, 3)

	// Rescaled into [-Scale, Scale]
	for label, pos := range positions {
		assert.LessOrEqual(t, math.Abs(pos.X), 1.0+1e-12, "node %s X out of bounds", label)
		assert.LessOrEqual(t, math.Abs(pos.Y), 1.0+1e-12, "node %s Y out of bounds", label)
	}

	// Alice and Charlie are not directly connected, should be furthest apart
	dist12 := distance(positions["Alice"], positions["Bob"])
	dist23 := distance(positions["Bob"], positions["Charlie"])
	dist13 := distance(positions["Alice"], positions["Charlie"])
	if dist13 < dist12 || dist13 < dist23 {
		t.Error("Spring layout did not separate unconnected nodes properly")
	}
}

// TestSpringLayout_Deterministic tests that identical seeds give identical output
func TestSpringLayout_Deterministic(t *testing.T) {
	g := graphtest.Random(12, []int{1, 5, 17, 40, 77, 100, 133, 2, 29, 64, 90})

	first := NewSpringLayout(DefaultLayoutConfig(), 7).ComputeLayout(g)
	for run := 0; run < 3; run++ {
		again := NewSpringLayout(DefaultLayoutConfig(), 7).ComputeLayout(g)
		for label, pos := range first {
			if again[label] != pos {
				t.Fatalf("run %d: position of %s changed: %+v != %+v", run, label, again[label], pos)
			}
		}
	}

	other := NewSpringLayout(DefaultLayoutConfig(), 8).ComputeLayout(g)
	same := true
	for label, pos := range first {
		if other[label] != pos {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should give different layouts")
}

// TestSpringLayout_InjectedGenerator tests layouts driven by a caller's generator
func TestSpringLayout_InjectedGenerator(t *testing.T) {
	g := graphtest.Path(5)

	a := NewSpringLayoutWithRand(nil, rand.New(rand.NewPCG(1, 2))).ComputeLayout(g)
	b := NewSpringLayoutWithRand(nil, rand.New(rand.NewPCG(1, 2))).ComputeLayout(g)
	assert.Equal(t, a, b)
}

// TestSpringLayout_Centered tests the layout is centered and scaled
func TestSpringLayout_Centered(t *testing.T) {
	g := graphtest.Star(6)
	config := DefaultLayoutConfig()
	config.Scale = 10

	positions := NewSpringLayout(config, 3).ComputeLayout(g)

	sumX, sumY, limit := 0.0, 0.0, 0.0
	for _, pos := range positions {
		sumX += pos.X
		sumY += pos.Y
		limit = math.Max(limit, math.Max(math.Abs(pos.X), math.Abs(pos.Y)))
	}
	assert.InDelta(t, 0, sumX, 1e-9)
	assert.InDelta(t, 0, sumY, 1e-9)
	assert.InDelta(t, 10, limit, 1e-9)
}

// TestCircularLayout tests circular layout algorithm
func TestCircularLayout(t *testing.T) {
	g := graphtest.Isolated(4)

	positions := NewCircularLayout(&LayoutConfig{Scale: 2}).ComputeLayout(g)

	require.Len(t, positions, 4)
	for label, pos := range positions {
		assert.InDelta(t, 2.0, math.Hypot(pos.X, pos.Y), 1e-9, "node %s not on circle", label)
	}
	assert.InDelta(t, 2.0, positions["n00"].X, 1e-9)
	assert.InDelta(t, 2.0, positions["n01"].Y, 1e-9)
}

// TestFitToCanvas tests canvas normalization
func TestFitToCanvas(t *testing.T) {
	positions := map[string]Position{
		"a": {X: -1, Y: -1},
		"b": {X: 1, Y: 1},
		"c": {X: 0, Y: 0},
	}

	fitted := FitToCanvas(positions, 800, 600, 50)

	assert.Equal(t, Position{X: 50, Y: 50}, fitted["a"])
	assert.Equal(t, Position{X: 750, Y: 550}, fitted["b"])
	assert.Equal(t, Position{X: 400, Y: 300}, fitted["c"])
	assert.Empty(t, FitToCanvas(map[string]Position{}, 800, 600, 50))
}

// TestEmptyGraph tests layouts on an empty graph
func TestEmptyGraph(t *testing.T) {
	g := graphtest.Isolated(0)

	assert.Empty(t, NewSpringLayout(nil, 1).ComputeLayout(g))
	assert.Empty(t, NewCircularLayout(nil).ComputeLayout(g))
}

// TestSingleNodeLayout tests that a single node sits at the origin
func TestSingleNodeLayout(t *testing.T) {
	g := graphtest.Isolated(1)

	positions := NewSpringLayout(nil, 1).ComputeLayout(g)
	require.Len(t, positions, 1)
	assert.Equal(t, Position{}, positions["n00"])
}

// TestEdgelessGraphLayout tests that repulsion alone still yields finite output
func TestEdgelessGraphLayout(t *testing.T) {
	positions := NewSpringLayout(nil, 99).ComputeLayout(graphtest.Isolated(5))

	require.Len(t, positions, 5)
	for label, pos := range positions {
		assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y), "node %s has NaN position", label)
	}
}

// TestVisualizationExport tests JSON export
func TestVisualizationExport(t *testing.T) {
	g := graphtest.MustBuild([]string{"Alice", "Bob"}, [2]string{"Alice", "Bob"})

	viz := NewVisualization(g, map[string]Position{"Alice": {X: 1, Y: 2}, "Bob": {X: 3, Y: 4}})
	viz.Communities = map[string]int{"Alice": 0, "Bob": 0}
	viz.Highlight = "Bob"

	data, err := viz.ExportJSON()
	require.NoError(t, err)

	var decoded struct {
		Nodes []struct {
			ID          string  `json:"id"`
			X           float64 `json:"x"`
			Y           float64 `json:"y"`
			Community   *int    `json:"community"`
			Highlighted bool    `json:"highlighted"`
		} `json:"nodes"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Nodes, 2)
	assert.Equal(t, "Alice", decoded.Nodes[0].ID)
	assert.Equal(t, 1.0, decoded.Nodes[0].X)
	assert.False(t, decoded.Nodes[0].Highlighted)
	assert.True(t, decoded.Nodes[1].Highlighted)
	require.NotNil(t, decoded.Nodes[1].Community)
	assert.Equal(t, 0, *decoded.Nodes[1].Community)
	require.Len(t, decoded.Edges, 1)
	assert.Equal(t, "Alice", decoded.Edges[0].From)
}
