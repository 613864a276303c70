// Package graphtest builds graphs for tests and property checks.
package graphtest

import (
	"fmt"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// Label returns the synthetic label used for node i.
func Label(i int) string {
	return fmt.Sprintf("n%02d", i)
}

// Random builds a sealed graph with n nodes whose edges are decoded from
// codes: each code picks the pair (code%n, (code/n)%n). Self-loops are
// skipped and duplicates collapse, so any input yields a valid graph.
func Random(n int, codes []int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddNode(Label(i))
	}
	if n > 1 {
		for _, code := range codes {
			if code < 0 {
				code = -code
			}
			a, b := code%n, (code/n)%n
			if a == b {
				continue
			}
			_ = g.AddEdge(Label(a), Label(b))
		}
	}
	g.Seal()
	return g
}

// MustBuild builds a sealed graph from labels and pairs, panicking on error.
func MustBuild(nodes []string, pairs ...[2]string) *graph.Graph {
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{From: p[0], To: p[1]}
	}
	g, err := graph.Build(nodes, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Path builds a0 - a1 - ... - a(n-1).
func Path(n int) *graph.Graph {
	nodes := make([]string, n)
	pairs := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		nodes[i] = Label(i)
		if i > 0 {
			pairs = append(pairs, [2]string{Label(i - 1), Label(i)})
		}
	}
	return MustBuild(nodes, pairs...)
}

// Star builds a hub n00 connected to n-1 spokes.
func Star(n int) *graph.Graph {
	nodes := make([]string, n)
	pairs := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		nodes[i] = Label(i)
		if i > 0 {
			pairs = append(pairs, [2]string{Label(0), Label(i)})
		}
	}
	return MustBuild(nodes, pairs...)
}

// Isolated builds n nodes and no edges.
func Isolated(n int) *graph.Graph {
	return Random(n, nil)
}
