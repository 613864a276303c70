package algorithms

import (
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// ClusteringCoefficient computes local clustering coefficient for all nodes
// Measures how close a node's neighbors are to being a complete graph
func ClusteringCoefficient(g *graph.Graph) map[string]float64 {
	return byLabel(g, clusteringScores(g))
}

// AverageClusteringCoefficient computes the average clustering coefficient
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	scores := clusteringScores(g)
	if len(scores) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, coef := range scores {
		sum += coef
	}
	return sum / float64(len(scores))
}

func clusteringScores(g *graph.Graph) []float64 {
	n := g.NodeCount()
	coefficients := make([]float64, n)
	mark := make([]bool, n)

	for v := 0; v < n; v++ {
		neighbors := g.NeighborIndices(v)
		k := len(neighbors)
		if k < 2 {
			continue
		}

		for _, u := range neighbors {
			mark[u] = true
		}

		// Each triangle through v is seen once from each of its two other corners
		links := 0
		for _, u := range neighbors {
			for _, w := range g.NeighborIndices(u) {
				if mark[w] {
					links++
				}
			}
		}

		for _, u := range neighbors {
			mark[u] = false
		}

		triangles := links / 2
		coefficients[v] = float64(triangles) / float64(k*(k-1)/2)
	}

	return coefficients
}
