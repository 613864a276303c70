package algorithms

// Community represents a detected community
type Community struct {
	ID      int      `json:"id" yaml:"id"`
	Members []string `json:"members" yaml:"members"`
	Size    int      `json:"size" yaml:"size"`
	Density float64  `json:"density" yaml:"density"` // Edge density within community
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64        // Quality measure of the partitioning
	NodeCommunity map[string]int // Node label -> Community ID
	Merges        []Merge        // Merge sequence, in the order applied
}

// Merge records one agglomeration step of the greedy detector. Into and From
// are working community indices, which start out as node insertion indices.
type Merge struct {
	Into int     `json:"into"`
	From int     `json:"from"`
	Gain float64 `json:"gain"`
}
