package algorithms

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph/graphtest"
)

const qTolerance = 1e-9

// TestAnalyticsInvariants checks centrality and community invariants on
// random simple graphs.
func TestAnalyticsInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	nodes := gen.IntRange(0, 14)
	edges := gen.SliceOf(gen.IntRange(0, 1<<16))

	properties.Property("degree centrality within [0,1]", prop.ForAll(
		func(n int, codes []int) bool {
			g := graphtest.Random(n, codes)
			for _, score := range DegreeCentrality(g) {
				if score < 0 || score > 1 {
					return false
				}
				if n <= 1 && score != 0 {
					return false
				}
			}
			return true
		},
		nodes, edges,
	))

	properties.Property("closeness within [0,1] and betweenness non-negative", prop.ForAll(
		func(n int, codes []int) bool {
			g := graphtest.Random(n, codes)
			result := ComputeAllCentrality(g, CentralityOptions{})
			if len(result.Scores) != n {
				return false
			}
			for _, s := range result.Scores {
				if s.Closeness < 0 || s.Closeness > 1+qTolerance || s.Betweenness < 0 {
					return false
				}
			}
			return true
		},
		nodes, edges,
	))

	properties.Property("most influential holds the maximum betweenness", prop.ForAll(
		func(n int, codes []int) bool {
			g := graphtest.Random(n, codes)
			label, ok := MostInfluential(g)
			if n == 0 {
				return !ok
			}
			scores := BetweennessCentrality(g)
			for _, other := range g.Nodes() {
				if other == label {
					// every node before the winner scores strictly less
					break
				}
				if scores[other] >= scores[label] {
					return false
				}
			}
			for _, s := range scores {
				if s > scores[label] {
					return false
				}
			}
			return true
		},
		nodes, edges,
	))

	properties.Property("communities partition the node set", prop.ForAll(
		func(n int, codes []int) bool {
			g := graphtest.Random(n, codes)
			result := GreedyModularity(g)
			seen := make(map[string]int)
			for id, c := range result.Communities {
				if c.ID != id || c.Size != len(c.Members) || c.Size == 0 {
					return false
				}
				for _, label := range c.Members {
					seen[label]++
					if result.NodeCommunity[label] != id {
						return false
					}
				}
			}
			if len(seen) != n {
				return false
			}
			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		nodes, edges,
	))

	properties.Property("partition is a local modularity maximum", prop.ForAll(
		func(n int, codes []int) bool {
			g := graphtest.Random(n, codes)
			result := GreedyModularity(g)
			partition := members(result)

			singletons := make([][]string, 0, n)
			for _, label := range g.Nodes() {
				singletons = append(singletons, []string{label})
			}
			q := Modularity(g, partition)
			if q < Modularity(g, singletons)-qTolerance {
				return false
			}

			// No single merge of two communities may raise Q
			for a := 0; a < len(partition); a++ {
				for b := a + 1; b < len(partition); b++ {
					merged := make([][]string, 0, len(partition)-1)
					for c := range partition {
						switch c {
						case a:
							joined := append(append([]string{}, partition[a]...), partition[b]...)
							merged = append(merged, joined)
						case b:
						default:
							merged = append(merged, partition[c])
						}
					}
					if Modularity(g, merged) > q+qTolerance {
						return false
					}
				}
			}
			return true
		},
		nodes, edges,
	))

	properties.TestingRun(t)
}
