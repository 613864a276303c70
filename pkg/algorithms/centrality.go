package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// NodeCentrality holds every centrality measure computed for one node.
type NodeCentrality struct {
	Degree                int     `json:"degree" yaml:"degree"`
	DegreeCentrality      float64 `json:"degree_centrality" yaml:"degree_centrality"`
	Closeness             float64 `json:"closeness" yaml:"closeness"`
	Betweenness           float64 `json:"betweenness" yaml:"betweenness"`
	NormalizedBetweenness float64 `json:"normalized_betweenness" yaml:"normalized_betweenness"`
}

// CentralityOptions tunes the centrality pass.
type CentralityOptions struct {
	// WassermanFaust scales closeness by the reachable fraction of the graph,
	// (reachable-1)/(N-1), so nodes in small components are not overrated.
	WassermanFaust bool
}

// CentralityResult contains centrality measures for all nodes.
type CentralityResult struct {
	Scores          map[string]NodeCentrality
	MostInfluential string
	// HasMostInfluential is false only for the empty graph.
	HasMostInfluential bool

	TopByBetweenness []RankedNode
	TopByCloseness   []RankedNode
	TopByDegree      []RankedNode
}

// RankedNode is a node label with one of its scores.
type RankedNode struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ComputeAllCentrality computes degree, closeness and betweenness in one call.
// Betweenness dominates the cost at O(V*E).
func ComputeAllCentrality(g *graph.Graph, opts CentralityOptions) *CentralityResult {
	n := g.NodeCount()
	degrees := degreeCounts(g)
	closeness := closenessScores(g, opts.WassermanFaust)
	betweenness := brandesBetweenness(g)

	normFactor := 0.0
	if n > 2 {
		normFactor = 2.0 / float64((n-1)*(n-2))
	}

	scores := make(map[string]NodeCentrality, n)
	degreeScores := make([]float64, n)
	for i := 0; i < n; i++ {
		degreeScores[i] = degreeCentrality(degrees[i], n)
		scores[g.Label(i)] = NodeCentrality{
			Degree:                degrees[i],
			DegreeCentrality:      degreeScores[i],
			Closeness:             closeness[i],
			Betweenness:           betweenness[i],
			NormalizedBetweenness: betweenness[i] * normFactor,
		}
	}

	result := &CentralityResult{
		Scores:           scores,
		TopByBetweenness: findTopNodes(g, betweenness, 10),
		TopByCloseness:   findTopNodes(g, closeness, 10),
		TopByDegree:      findTopNodes(g, degreeScores, 10),
	}
	if idx, ok := argMaxFirst(betweenness); ok {
		result.MostInfluential = g.Label(idx)
		result.HasMostInfluential = true
	}
	return result
}

// DegreeCentrality computes degree/(N-1) for all nodes; 0 everywhere when N <= 1.
func DegreeCentrality(g *graph.Graph) map[string]float64 {
	n := g.NodeCount()
	out := make(map[string]float64, n)
	for i, d := range degreeCounts(g) {
		out[g.Label(i)] = degreeCentrality(d, n)
	}
	return out
}

// ClosenessCentrality computes (reachable-1)/sum(distances) per node using a
// BFS from each node. Unreachable nodes do not contribute; isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph, opts CentralityOptions) map[string]float64 {
	return byLabel(g, closenessScores(g, opts.WassermanFaust))
}

// BetweennessCentrality computes raw betweenness for all nodes with Brandes'
// algorithm. Values are halved since every unordered pair is seen from both ends.
func BetweennessCentrality(g *graph.Graph) map[string]float64 {
	return byLabel(g, brandesBetweenness(g))
}

// MostInfluential returns the node with the strictly largest betweenness.
// Ties go to the node added first. ok is false for an empty graph.
func MostInfluential(g *graph.Graph) (label string, ok bool) {
	idx, ok := argMaxFirst(brandesBetweenness(g))
	if !ok {
		return "", false
	}
	return g.Label(idx), true
}

func degreeCounts(g *graph.Graph) []int {
	n := g.NodeCount()
	degrees := make([]int, n)
	for i := 0; i < n; i++ {
		degrees[i] = len(g.NeighborIndices(i))
	}
	return degrees
}

func degreeCentrality(degree, n int) float64 {
	if n <= 1 {
		return 0.0
	}
	return float64(degree) / float64(n-1)
}

func closenessScores(g *graph.Graph, wassermanFaust bool) []float64 {
	n := g.NodeCount()
	closeness := make([]float64, n)
	distance := make([]int, n)
	queue := make([]int, 0, n)

	for source := 0; source < n; source++ {
		for i := range distance {
			distance[i] = -1
		}
		distance[source] = 0
		queue = append(queue[:0], source)

		totalDistance := 0
		reachable := 1
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, w := range g.NeighborIndices(v) {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					totalDistance += distance[w]
					reachable++
					queue = append(queue, w)
				}
			}
		}

		if reachable <= 1 || totalDistance == 0 {
			closeness[source] = 0.0
			continue
		}
		score := float64(reachable-1) / float64(totalDistance)
		if wassermanFaust && n > 1 {
			score *= float64(reachable-1) / float64(n-1)
		}
		closeness[source] = score
	}

	return closeness
}

// brandesBetweenness runs one BFS per source, records visitation order on an
// explicit stack and drains it in reverse to accumulate dependencies.
func brandesBetweenness(g *graph.Graph) []float64 {
	n := g.NodeCount()
	betweenness := make([]float64, n)
	if n == 0 {
		return betweenness
	}

	stack := make([]int, 0, n)
	queue := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for source := 0; source < n; source++ {
		stack = stack[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			predecessors[i] = predecessors[i][:0]
			sigma[i] = 0.0
			distance[i] = -1
			delta[i] = 0.0
		}

		sigma[source] = 1.0
		distance[source] = 0
		queue = append(queue, source)

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)

			for _, w := range g.NeighborIndices(v) {
				if distance[w] < 0 {
					distance[w] = distance[v] + 1
					queue = append(queue, w)
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation in non-increasing distance order
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	for i := range betweenness {
		betweenness[i] /= 2.0
	}
	return betweenness
}

// argMaxFirst returns the first index holding the maximum value.
func argMaxFirst(values []float64) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best, true
}

func byLabel(g *graph.Graph, values []float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	for i, v := range values {
		out[g.Label(i)] = v
	}
	return out
}

// findTopNodes returns the n highest scores, ties ordered by graph order.
func findTopNodes(g *graph.Graph, scores []float64, n int) []RankedNode {
	if n <= 0 || len(scores) == 0 {
		return nil
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if n > len(order) {
		n = len(order)
	}
	result := make([]RankedNode, n)
	for i := 0; i < n; i++ {
		result[i] = RankedNode{Label: g.Label(order[i]), Score: scores[order[i]]}
	}
	return result
}
