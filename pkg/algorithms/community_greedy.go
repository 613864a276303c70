package algorithms

import (
	"container/heap"
	"sort"

	"github.com/dd0wney/cluso-socialgraph/pkg/graph"
)

// mergeCandidate is a pair of adjacent communities (i < j) with the integer
// numerator of its modularity gain. ΔQ = gain / (2m²).
type mergeCandidate struct {
	i, j   int
	gain   int64
	vi, vj uint32
}

// candidateHeap is a max-heap on gain; equal gains pop by ascending (i, j).
type candidateHeap []mergeCandidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(a, b int) bool {
	if h[a].gain != h[b].gain {
		return h[a].gain > h[b].gain
	}
	if h[a].i != h[b].i {
		return h[a].i < h[b].i
	}
	return h[a].j < h[b].j
}
func (h candidateHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(mergeCandidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// greedyState is the working partition of the agglomeration.
type greedyState struct {
	alive   []bool
	members [][]int
	degrees []int64         // sum of member degrees per community
	links   []map[int]int64 // edges between community pairs
	version []uint32
	twoM    int64
}

// gain returns 2m·L_ij − K_i·K_j, the modularity gain scaled by 2m².
func (s *greedyState) gain(i, j int) int64 {
	return s.twoM*s.links[i][j] - s.degrees[i]*s.degrees[j]
}

func (s *greedyState) candidate(a, b int) mergeCandidate {
	if a > b {
		a, b = b, a
	}
	return mergeCandidate{i: a, j: b, gain: s.gain(a, b), vi: s.version[a], vj: s.version[b]}
}

func (s *greedyState) stale(c mergeCandidate) bool {
	return !s.alive[c.i] || !s.alive[c.j] || s.version[c.i] != c.vi || s.version[c.j] != c.vj
}

// merge folds community j into community i.
func (s *greedyState) merge(i, j int) {
	s.members[i] = append(s.members[i], s.members[j]...)
	s.degrees[i] += s.degrees[j]

	for k, l := range s.links[j] {
		delete(s.links[k], j)
		if k == i {
			continue
		}
		s.links[i][k] += l
		s.links[k][i] += l
	}
	delete(s.links[i], j)

	s.links[j] = nil
	s.members[j] = nil
	s.alive[j] = false
	s.version[i]++
}

// GreedyModularity partitions the graph by Clauset-Newman-Moore greedy
// modularity maximisation. Every node starts in its own community; the pair of
// adjacent communities with the largest positive gain is merged until no merge
// increases modularity.
//
// Gains are compared as exact integers, so equal gains tie exactly and resolve
// by the lowest (i, j) working-index pair; the surviving community keeps the
// lower index. The returned communities are ordered by size descending, then by
// their earliest member in graph order; members are listed in graph order.
// A graph without edges yields one singleton per node.
func GreedyModularity(g *graph.Graph) *CommunityDetectionResult {
	n := g.NodeCount()
	m := int64(g.EdgeCount())

	state := &greedyState{
		alive:   make([]bool, n),
		members: make([][]int, n),
		degrees: make([]int64, n),
		links:   make([]map[int]int64, n),
		version: make([]uint32, n),
		twoM:    2 * m,
	}
	for i := 0; i < n; i++ {
		state.alive[i] = true
		state.members[i] = []int{i}
		state.degrees[i] = int64(len(g.NeighborIndices(i)))
		state.links[i] = make(map[int]int64)
	}
	for _, e := range g.EdgeIndices() {
		state.links[e[0]][e[1]]++
		state.links[e[1]][e[0]]++
	}

	h := make(candidateHeap, 0, len(g.EdgeIndices()))
	for _, e := range g.EdgeIndices() {
		h = append(h, state.candidate(e[0], e[1]))
	}
	heap.Init(&h)

	var merges []Merge
	scale := 0.0
	if m > 0 {
		scale = 1.0 / float64(2*m*m)
	}

	for h.Len() > 0 {
		best := heap.Pop(&h).(mergeCandidate)
		if state.stale(best) {
			continue
		}
		if best.gain <= 0 {
			break
		}

		state.merge(best.i, best.j)
		merges = append(merges, Merge{Into: best.i, From: best.j, Gain: float64(best.gain) * scale})

		for k := range state.links[best.i] {
			heap.Push(&h, state.candidate(best.i, k))
		}
	}

	groups := make([][]int, 0)
	for i := 0; i < n; i++ {
		if !state.alive[i] {
			continue
		}
		group := state.members[i]
		sort.Ints(group)
		groups = append(groups, group)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		if len(groups[a]) != len(groups[b]) {
			return len(groups[a]) > len(groups[b])
		}
		return groups[a][0] < groups[b][0]
	})

	result := newCommunityResult(g, groups)
	result.Merges = merges
	return result
}

// newCommunityResult renders index groups as labelled communities and fills in
// density, the node lookup and modularity.
func newCommunityResult(g *graph.Graph, groups [][]int) *CommunityDetectionResult {
	assignment := make([]int, g.NodeCount())
	for id, group := range groups {
		for _, v := range group {
			assignment[v] = id
		}
	}

	internal := make([]int, len(groups))
	for _, e := range g.EdgeIndices() {
		if assignment[e[0]] == assignment[e[1]] {
			internal[assignment[e[0]]]++
		}
	}

	communities := make([]*Community, len(groups))
	nodeCommunity := make(map[string]int, g.NodeCount())
	for id, group := range groups {
		members := make([]string, len(group))
		for k, v := range group {
			members[k] = g.Label(v)
			nodeCommunity[members[k]] = id
		}

		density := 0.0
		if size := len(group); size > 1 {
			density = float64(internal[id]) / float64(size*(size-1)/2)
		}

		communities[id] = &Community{
			ID:      id,
			Members: members,
			Size:    len(members),
			Density: density,
		}
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		NodeCommunity: nodeCommunity,
		Modularity:    modularityOfAssignment(g, assignment, len(groups)),
	}
}
