package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// ConnectedComponents finds all connected components in the graph. Components
// are numbered in the order their first node appears in the graph.
func ConnectedComponents(g *graph.Graph) *CommunityDetectionResult {
	n := g.NodeCount()
	visited := make([]bool, n)
	groups := make([][]int, 0)
	queue := make([]int, 0, n)

	// BFS to find each component
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		visited[start] = true
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			for _, w := range g.NeighborIndices(queue[head]) {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}

		component := make([]int, len(queue))
		copy(component, queue)
		sort.Ints(component)
		groups = append(groups, component)
	}

	return newCommunityResult(g, groups)
}
