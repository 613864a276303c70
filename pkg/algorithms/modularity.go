package algorithms

import (
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// Modularity computes Q = Σ_c [ L_c/m − (K_c/2m)² ] for a partition given as
// lists of node labels, where L_c is the number of edges inside community c
// and K_c the sum of its member degrees. Q is 0 for a graph without edges.
// Labels missing from the partition, or unknown to the graph, are ignored.
func Modularity(g *graph.Graph, communities [][]string) float64 {
	assignment := make([]int, g.NodeCount())
	for i := range assignment {
		assignment[i] = -1
	}
	for id, members := range communities {
		for _, label := range members {
			if idx, ok := g.IndexOf(label); ok {
				assignment[idx] = id
			}
		}
	}
	return modularityOfAssignment(g, assignment, len(communities))
}

func modularityOfAssignment(g *graph.Graph, assignment []int, k int) float64 {
	m := g.EdgeCount()
	if m == 0 || k == 0 {
		return 0.0
	}

	internal := make([]float64, k)
	degreeSum := make([]float64, k)
	for v, c := range assignment {
		if c >= 0 {
			degreeSum[c] += float64(len(g.NeighborIndices(v)))
		}
	}
	for _, e := range g.EdgeIndices() {
		c := assignment[e[0]]
		if c >= 0 && c == assignment[e[1]] {
			internal[c]++
		}
	}

	mf := float64(m)
	q := 0.0
	for c := 0; c < k; c++ {
		a := degreeSum[c] / (2 * mf)
		q += internal[c]/mf - a*a
	}
	return q
}
