// Package dataset loads graph definitions from YAML or JSON node and edge
// lists and ships the built-in friendship network.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
	"github.com/dd0wney/cluso-socialgraph/pkg/validation"
)

// ErrInvalidDataset is returned when a dataset fails shape validation.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is a named node list with an edge list of label pairs.
type Dataset struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []string   `json:"nodes" yaml:"nodes"`
	Edges [][]string `json:"edges" yaml:"edges"`
}

// Parse decodes a dataset from YAML. JSON input parses as well.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Load reads and parses the dataset stored at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Validate checks label and edge shape. Referential integrity is checked when
// the graph is built.
func (d *Dataset) Validate() error {
	req := &validation.GraphRequest{Nodes: d.Nodes, Edges: d.Edges}
	if err := validation.ValidateGraphRequest(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return nil
}

// EdgeList converts the label pairs to graph edges.
func (d *Dataset) EdgeList() []graph.Edge {
	edges := make([]graph.Edge, 0, len(d.Edges))
	for _, pair := range d.Edges {
		if len(pair) != 2 {
			continue
		}
		edges = append(edges, graph.Edge{From: pair[0], To: pair[1]})
	}
	return edges
}

// Graph validates the dataset and builds a sealed graph from it.
func (d *Dataset) Graph() (*graph.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return graph.Build(d.Nodes, d.EdgeList())
}

// Marshal encodes the dataset as YAML.
func (d *Dataset) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
