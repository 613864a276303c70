package analytics

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-socialgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/visualization"
)

// Report is the immutable result of analysing one graph with one seed.
// Accessors return copies; nothing mutates a report after Analyze returns.
type Report struct {
	id         uuid.UUID
	seed       uint64
	layout     string
	nodes      []string
	edges      []graph.Edge
	centrality map[string]algorithms.NodeCentrality
	clustering map[string]float64

	communities [][]string
	assignment  map[string]int
	modularity  float64
	merges      int
	components  int

	mostInfluential    string
	hasMostInfluential bool

	positions map[string]visualization.Position
}

// NodeMetrics is one row of the per-node metrics table.
type NodeMetrics struct {
	Label string `json:"label" yaml:"label"`

	algorithms.NodeCentrality `yaml:",inline"`

	Clustering float64                `json:"clustering" yaml:"clustering"`
	Community  int                    `json:"community" yaml:"community"`
	Position   visualization.Position `json:"position" yaml:"position"`
}

// ID identifies the report. Identical graph, seed and options give the same ID.
func (r *Report) ID() uuid.UUID { return r.id }

// Seed returns the layout seed the report was computed with.
func (r *Report) Seed() uint64 { return r.seed }

// LayoutAlgorithm names the layout that produced the positions.
func (r *Report) LayoutAlgorithm() string { return r.layout }

// Nodes returns the node labels in graph order.
func (r *Report) Nodes() []string {
	out := make([]string, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Edges returns the analysed edges in graph order.
func (r *Report) Edges() []graph.Edge {
	out := make([]graph.Edge, len(r.edges))
	copy(out, r.edges)
	return out
}

// Metrics returns the centrality values of label.
func (r *Report) Metrics(label string) (algorithms.NodeCentrality, bool) {
	m, ok := r.centrality[label]
	return m, ok
}

// Clustering returns the local clustering coefficient of label.
func (r *Report) Clustering(label string) (float64, bool) {
	c, ok := r.clustering[label]
	return c, ok
}

// Community returns the index into Communities() of the community holding label.
func (r *Report) Community(label string) (int, bool) {
	c, ok := r.assignment[label]
	return c, ok
}

// Communities returns the detected communities, largest first. Members are
// listed in graph order.
func (r *Report) Communities() [][]string {
	out := make([][]string, len(r.communities))
	for i, members := range r.communities {
		out[i] = append([]string(nil), members...)
	}
	return out
}

// Modularity returns Q of the community partition.
func (r *Report) Modularity() float64 { return r.modularity }

// MergeCount returns how many greedy merges produced the partition.
func (r *Report) MergeCount() int { return r.merges }

// ComponentCount returns the number of connected components.
func (r *Report) ComponentCount() int { return r.components }

// MostInfluential returns the node with the highest betweenness, ties going
// to the earliest node. ok is false for an empty graph.
func (r *Report) MostInfluential() (string, bool) {
	return r.mostInfluential, r.hasMostInfluential
}

// Position returns the layout coordinate of label.
func (r *Report) Position(label string) (visualization.Position, bool) {
	p, ok := r.positions[label]
	return p, ok
}

// Positions returns a copy of every layout coordinate.
func (r *Report) Positions() map[string]visualization.Position {
	out := make(map[string]visualization.Position, len(r.positions))
	for k, v := range r.positions {
		out[k] = v
	}
	return out
}

// Ranking returns one row per node sorted by degree then betweenness, both
// descending. Equal rows keep graph order.
func (r *Report) Ranking() []NodeMetrics {
	rows := make([]NodeMetrics, len(r.nodes))
	for i, label := range r.nodes {
		rows[i] = NodeMetrics{
			Label:          label,
			NodeCentrality: r.centrality[label],
			Clustering:     r.clustering[label],
			Community:      r.assignment[label],
			Position:       r.positions[label],
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Degree != rows[b].Degree {
			return rows[a].Degree > rows[b].Degree
		}
		return rows[a].Betweenness > rows[b].Betweenness
	})
	return rows
}

// Visualization packages the layout with community colouring and the most
// influential node highlighted.
func (r *Report) Visualization() *visualization.Visualization {
	communities := make(map[string]int, len(r.assignment))
	for k, v := range r.assignment {
		communities[k] = v
	}
	return &visualization.Visualization{
		Nodes:       r.Nodes(),
		Edges:       r.Edges(),
		Positions:   r.Positions(),
		Communities: communities,
		Highlight:   r.mostInfluential,
	}
}

// Snapshot is the serialisable form of a report.
type Snapshot struct {
	ID              string        `json:"id" yaml:"id"`
	Seed            uint64        `json:"seed" yaml:"seed"`
	Layout          string        `json:"layout" yaml:"layout"`
	NodeCount       int           `json:"node_count" yaml:"node_count"`
	EdgeCount       int           `json:"edge_count" yaml:"edge_count"`
	Components      int           `json:"components" yaml:"components"`
	MostInfluential *string       `json:"most_influential" yaml:"most_influential"`
	Modularity      float64       `json:"modularity" yaml:"modularity"`
	Merges          int           `json:"merges" yaml:"merges"`
	Communities     [][]string    `json:"communities" yaml:"communities"`
	Nodes           []NodeMetrics `json:"nodes" yaml:"nodes"`
}

// Snapshot copies the report into its serialisable form. Nodes are listed in
// ranking order.
func (r *Report) Snapshot() Snapshot {
	s := Snapshot{
		ID:          r.id.String(),
		Seed:        r.seed,
		Layout:      r.layout,
		NodeCount:   len(r.nodes),
		EdgeCount:   len(r.edges),
		Components:  r.components,
		Modularity:  r.modularity,
		Merges:      r.merges,
		Communities: r.Communities(),
		Nodes:       r.Ranking(),
	}
	if r.hasMostInfluential {
		label := r.mostInfluential
		s.MostInfluential = &label
	}
	return s
}

// MarshalJSON encodes the report snapshot.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

// MarshalYAML implements yaml.Marshaler.
func (r *Report) MarshalYAML() (any, error) {
	return r.Snapshot(), nil
}
