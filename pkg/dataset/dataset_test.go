package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

func TestFriendship(t *testing.T) {
	ds := Friendship()

	assert.Equal(t, "friendship", ds.Name)
	assert.Len(t, ds.Nodes, 10)
	assert.Len(t, ds.Edges, 16)

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 16, g.EdgeCount())
	assert.True(t, g.Sealed())
	assert.True(t, g.HasEdge("Jack", "Bob"))
}

func TestFriendshipReturnsCopies(t *testing.T) {
	a := Friendship()
	a.Nodes[0] = "Mallory"

	assert.Equal(t, "Alice", Friendship().Nodes[0])
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: triangle
nodes: [a, b, c]
edges:
  - [a, b]
  - [b, c]
  - [c, a]
`)
	ds, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "triangle", ds.Name)
	assert.Equal(t, []string{"a", "b", "c"}, ds.Nodes)

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"nodes": ["x", "y"], "edges": [["x", "y"]]}`)

	ds, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, ds.Nodes)
	assert.Equal(t, []graph.Edge{{From: "x", To: "y"}}, ds.EdgeList())
}

func TestParseEmpty(t *testing.T) {
	ds, err := Parse(nil)
	require.NoError(t, err)

	g, err := ds.Graph()
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "nodes: [a, b"},
		{"unknown field", "nodes: [a]\nweights: [1]"},
		{"edge arity", "nodes: [a, b]\nedges: [[a, b, a]]"},
		{"empty label", "nodes: [a, '']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseArityIsInvalidDataset(t *testing.T) {
	_, err := Parse([]byte("nodes: [a]\nedges: [[a]]"))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestGraphConstructionErrors(t *testing.T) {
	tests := []struct {
		name string
		ds   *Dataset
		want error
	}{
		{
			name: "unknown endpoint",
			ds:   &Dataset{Nodes: []string{"a"}, Edges: [][]string{{"a", "b"}}},
			want: graph.ErrUnknownNode,
		},
		{
			name: "self loop",
			ds:   &Dataset{Nodes: []string{"a"}, Edges: [][]string{{"a", "a"}}},
			want: graph.ErrSelfLoop,
		},
		{
			name: "duplicate node",
			ds:   &Dataset{Nodes: []string{"a", "a"}},
			want: graph.ErrDuplicateNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ds.Graph()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "friends.yaml")
	data, err := Friendship().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Friendship(), ds)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
