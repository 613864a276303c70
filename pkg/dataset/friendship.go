package dataset

// Friendship returns the ten-person friendship network used for demos and
// regression tests. Each call returns a fresh copy.
func Friendship() *Dataset {
	return &Dataset{
		Name: "friendship",
		Nodes: []string{
			"Alice", "Bob", "Charlie", "Diana", "Eve",
			"Frank", "Grace", "Hannah", "Ian", "Jack",
		},
		Edges: [][]string{
			{"Alice", "Bob"},
			{"Alice", "Charlie"},
			{"Bob", "Charlie"},
			{"Charlie", "Diana"},
			{"Diana", "Eve"},
			{"Bob", "Diana"},
			{"Frank", "Eve"},
			{"Eve", "Ian"},
			{"Diana", "Ian"},
			{"Ian", "Grace"},
			{"Grace", "Hannah"},
			{"Hannah", "Jack"},
			{"Grace", "Jack"},
			{"Charlie", "Frank"},
			{"Alice", "Eve"},
			{"Bob", "Jack"},
		},
	}
}
