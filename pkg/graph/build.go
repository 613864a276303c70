package graph

import (
	"crypto/sha256"
	"encoding/binary"
)

// Build constructs and seals a graph from a node list and an edge list.
// The first construction error aborts the build.
func Build(nodes []string, edges []Edge) (*Graph, error) {
	g := New()
	for _, label := range nodes {
		if err := g.AddNode(label); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	g.Seal()
	return g, nil
}

// Fingerprint returns a digest of the node order and edge order. Two graphs
// built from identical input share a fingerprint.
func (g *Graph) Fingerprint() [32]byte {
	h := sha256.New()
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(len(g.labels)))
	h.Write(buf[:])
	for _, label := range g.labels {
		binary.BigEndian.PutUint64(buf[:], uint64(len(label)))
		h.Write(buf[:])
		h.Write([]byte(label))
	}
	for _, e := range g.edges {
		binary.BigEndian.PutUint64(buf[:], uint64(e[0]))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], uint64(e[1]))
		h.Write(buf[:])
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
