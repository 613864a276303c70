package visualization

import (
	"encoding/json"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// Visualization represents a graph visualization with layout
type Visualization struct {
	Nodes       []string
	Edges       []graph.Edge
	Positions   map[string]Position
	Communities map[string]int
	Highlight   string // Label to emphasise, usually the most influential node
}

// NewVisualization collects the nodes and edges of g with the given positions.
func NewVisualization(g *graph.Graph, positions map[string]Position) *Visualization {
	return &Visualization{
		Nodes:     g.Nodes(),
		Edges:     g.Edges(),
		Positions: positions,
	}
}

type nodeViz struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Community   *int    `json:"community,omitempty"`
	Highlighted bool    `json:"highlighted,omitempty"`
}

type edgeViz struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type vizData struct {
	Nodes []nodeViz `json:"nodes"`
	Edges []edgeViz `json:"edges"`
}

// ExportJSON exports the visualization to JSON. Nodes keep graph order.
func (v *Visualization) ExportJSON() ([]byte, error) {
	data := vizData{
		Nodes: make([]nodeViz, 0, len(v.Nodes)),
		Edges: make([]edgeViz, 0, len(v.Edges)),
	}

	for _, label := range v.Nodes {
		pos := v.Positions[label]
		node := nodeViz{
			ID:          label,
			X:           pos.X,
			Y:           pos.Y,
			Highlighted: label == v.Highlight && v.Highlight != "",
		}
		if c, ok := v.Communities[label]; ok {
			node.Community = &c
		}
		data.Nodes = append(data.Nodes, node)
	}

	for _, e := range v.Edges {
		data.Edges = append(data.Edges, edgeViz{From: e.From, To: e.To})
	}

	return json.Marshal(data)
}
