package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

func TestAddNode_Duplicate(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Alice"))

	err := g.AddNode("Alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDuplicateNode))
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddNode_EmptyLabel(t *testing.T) {
	g := graph.New()
	err := g.AddNode("")
	assert.ErrorIs(t, err, graph.ErrEmptyLabel)
}

func TestAddEdge_Errors(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want error
	}{
		{"unknown first endpoint", "Zed", "Alice", graph.ErrUnknownNode},
		{"unknown second endpoint", "Alice", "Zed", graph.ErrUnknownNode},
		{"self loop", "Alice", "Alice", graph.ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New()
			require.NoError(t, g.AddNode("Alice"))
			require.NoError(t, g.AddNode("Bob"))

			err := g.AddEdge(tt.a, tt.b)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, g.EdgeCount())
		})
	}
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Alice"))
	require.NoError(t, g.AddNode("Bob"))

	require.NoError(t, g.AddEdge("Alice", "Bob"))
	require.NoError(t, g.AddEdge("Bob", "Alice"))
	require.NoError(t, g.AddEdge("Alice", "Bob"))

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("Alice", "Bob"))
	assert.True(t, g.HasEdge("Bob", "Alice"))

	deg, err := g.Degree("Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	g := graph.New()
	for _, label := range []string{"Charlie", "Alice", "Bob"} {
		require.NoError(t, g.AddNode(label))
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, g.Nodes())

	i, ok := g.IndexOf("Alice")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "Alice", g.Label(i))
}

func TestNeighborsInEdgeOrder(t *testing.T) {
	g, err := graph.Build(
		[]string{"A", "B", "C", "D"},
		[]graph.Edge{{From: "A", To: "C"}, {From: "B", To: "A"}, {From: "A", To: "D"}},
	)
	require.NoError(t, err)

	neighbors, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D"}, neighbors)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	assert.False(t, g.HasEdge("B", "C"))
	assert.False(t, g.HasEdge("A", "Z"))
}

func TestBuild_PropagatesFirstError(t *testing.T) {
	_, err := graph.Build([]string{"A", "B", "A"}, nil)
	assert.ErrorIs(t, err, graph.ErrDuplicateNode)

	_, err = graph.Build([]string{"A", "B"}, []graph.Edge{{From: "A", To: "C"}})
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	_, err = graph.Build([]string{"A"}, []graph.Edge{{From: "A", To: "A"}})
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestBuild_Seals(t *testing.T) {
	g, err := graph.Build([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.True(t, g.Sealed())

	assert.ErrorIs(t, g.AddNode("C"), graph.ErrSealed)
	assert.ErrorIs(t, g.AddEdge("A", "B"), graph.ErrSealed)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEmptyGraph(t *testing.T) {
	g, err := graph.Build(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
}

func TestFingerprint(t *testing.T) {
	build := func(edges ...graph.Edge) *graph.Graph {
		g, err := graph.Build([]string{"A", "B", "C"}, edges)
		require.NoError(t, err)
		return g
	}

	g1 := build(graph.Edge{From: "A", To: "B"})
	g2 := build(graph.Edge{From: "A", To: "B"})
	g3 := build(graph.Edge{From: "A", To: "C"})

	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.NotEqual(t, g1.Fingerprint(), g3.Fingerprint())
}
