// Package graph provides the undirected simple graph the analytics engine
// reads from. Nodes are identified by unique string labels and keep their
// insertion order, which every algorithm downstream relies on for
// deterministic iteration.
package graph

// Edge is an unordered pair of node labels.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Graph is an undirected simple graph. It is not safe for concurrent
// mutation; once sealed it is read-only and may be shared freely.
type Graph struct {
	labels []string
	index  map[string]int
	adj    [][]int
	adjSet []map[int]struct{}
	edges  [][2]int
	sealed bool
}

// New creates an empty, unsealed graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// AddNode adds a node with the given label.
func (g *Graph) AddNode(label string) error {
	if g.sealed {
		return NewError("add_node").Node(label).Cause(ErrSealed).Err()
	}
	if label == "" {
		return NewError("add_node").Cause(ErrEmptyLabel).Err()
	}
	if _, exists := g.index[label]; exists {
		return DuplicateNodeError(label)
	}

	g.index[label] = len(g.labels)
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)
	g.adjSet = append(g.adjSet, make(map[int]struct{}))
	return nil
}

// AddEdge connects a and b. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(a, b string) error {
	if g.sealed {
		return NewError("add_edge").Edge(a, b).Cause(ErrSealed).Err()
	}
	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return UnknownNodeError(a, b)
	}
	if ia == ib {
		return SelfLoopError(a)
	}
	if _, exists := g.adjSet[ia][ib]; exists {
		return nil
	}

	g.adj[ia] = append(g.adj[ia], ib)
	g.adj[ib] = append(g.adj[ib], ia)
	g.adjSet[ia][ib] = struct{}{}
	g.adjSet[ib][ia] = struct{}{}
	g.edges = append(g.edges, [2]int{ia, ib})
	return nil
}

// Seal makes the graph read-only. Further AddNode/AddEdge calls fail with ErrSealed.
func (g *Graph) Seal() {
	g.sealed = true
}

// Sealed reports whether the graph is read-only.
func (g *Graph) Sealed() bool {
	return g.sealed
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns node labels in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Edges returns edges in insertion order, endpoints as first added.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{From: g.labels[e[0]], To: g.labels[e[1]]}
	}
	return out
}

// HasNode reports whether label is present.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]
	return ok
}

// HasEdge reports whether a and b are adjacent. Unknown labels yield false.
func (g *Graph) HasEdge(a, b string) bool {
	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	_, ok := g.adjSet[ia][ib]
	return ok
}

// Neighbors returns the neighbors of label in edge insertion order.
func (g *Graph) Neighbors(label string) ([]string, error) {
	i, ok := g.index[label]
	if !ok {
		return nil, NewError("neighbors").Node(label).Cause(ErrUnknownNode).Err()
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.labels[j]
	}
	return out, nil
}

// Degree returns the number of neighbors of label.
func (g *Graph) Degree(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, NewError("degree").Node(label).Cause(ErrUnknownNode).Err()
	}
	return len(g.adj[i]), nil
}

// IndexOf returns the insertion index of label.
func (g *Graph) IndexOf(label string) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// Label returns the label at insertion index i.
func (g *Graph) Label(i int) string {
	return g.labels[i]
}

// NeighborIndices returns the adjacency of node i by index.
// The returned slice is shared and must not be modified.
func (g *Graph) NeighborIndices(i int) []int {
	return g.adj[i]
}

// EdgeIndices returns edges as index pairs in insertion order.
// The returned slice is shared and must not be modified.
func (g *Graph) EdgeIndices() [][2]int {
	return g.edges
}
