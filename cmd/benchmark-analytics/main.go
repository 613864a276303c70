package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/spf13/pflag"

	"github.com/dd0wney/cluso-socialgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-socialgraph/pkg/analytics"
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/visualization"
)

func main() {
	nodes := pflag.Int("nodes", 300, "Number of nodes to create")
	edges := pflag.Int("edges", 900, "Number of edges to create")
	seed := pflag.Uint64("seed", analytics.DefaultSeed, "Seed for graph generation and layout")
	workers := pflag.Int("workers", 3, "Worker pool size for the parallel run")
	pflag.Parse()

	fmt.Printf("🔥 Social Graph Analytics Benchmark\n")
	fmt.Printf("===================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nodes: %d\n", *nodes)
	fmt.Printf("  Edges: %d\n\n", *edges)

	fmt.Printf("📝 Building random graph...\n")
	start := time.Now()
	g, err := randomGraph(*nodes, *edges, *seed)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}
	fmt.Printf("✅ Built %d nodes and %d edges in %v\n", g.NodeCount(), g.EdgeCount(), time.Since(start))

	fmt.Printf("\n📊 Benchmark 1: Betweenness Centrality\n")
	start = time.Now()
	centrality := algorithms.ComputeAllCentrality(g, algorithms.CentralityOptions{})
	fmt.Printf("✅ Centrality completed in %v\n", time.Since(start))
	fmt.Printf("  Top 5 nodes by Betweenness:\n")
	for i, node := range centrality.TopByBetweenness[:min(5, len(centrality.TopByBetweenness))] {
		fmt.Printf("    %d. %s (score: %.3f)\n", i+1, node.Label, node.Score)
	}

	fmt.Printf("\n📊 Benchmark 2: Greedy Modularity\n")
	start = time.Now()
	communities := algorithms.GreedyModularity(g)
	fmt.Printf("✅ Community detection completed in %v\n", time.Since(start))
	fmt.Printf("  Communities: %d\n", len(communities.Communities))
	fmt.Printf("  Merges: %d\n", len(communities.Merges))
	fmt.Printf("  Modularity: %.4f\n", communities.Modularity)

	fmt.Printf("\n📊 Benchmark 3: Spring Layout\n")
	start = time.Now()
	visualization.NewSpringLayout(visualization.DefaultLayoutConfig(), *seed).ComputeLayout(g)
	fmt.Printf("✅ Layout completed in %v\n", time.Since(start))

	fmt.Printf("\n📊 Benchmark 4: Full analysis, sequential vs parallel\n")
	start = time.Now()
	analytics.Analyze(g, *seed)
	sequential := time.Since(start)

	opts := analytics.DefaultOptions()
	opts.Parallel = true
	opts.Workers = *workers
	engine, err := analytics.NewEngine(opts, nil, nil)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer engine.Close()

	start = time.Now()
	if _, err := engine.Analyze(context.Background(), g, *seed); err != nil {
		log.Fatalf("Parallel analysis failed: %v", err)
	}
	concurrent := time.Since(start)

	fmt.Printf("  Sequential: %v\n", sequential)
	fmt.Printf("  Parallel (%d workers): %v\n", *workers, concurrent)

	fmt.Printf("\n✅ Benchmark complete!\n")
}

// randomGraph draws edges uniformly; self-loops are skipped and duplicates collapse.
func randomGraph(n, m int, seed uint64) (*graph.Graph, error) {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("user%d", i)
	}

	edges := make([]graph.Edge, 0, m)
	for len(edges) < m && n > 1 {
		a, b := rng.IntN(n), rng.IntN(n)
		if a == b {
			continue
		}
		edges = append(edges, graph.Edge{From: labels[a], To: labels[b]})
	}

	return graph.Build(labels, edges)
}
