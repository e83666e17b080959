package lookup

import (
	"sort"

	"github.com/katalvlaran/tokswap/swap"
)

// RelabelResult is the outcome of canonically relabelling a total mapping on
// at most MaxTableVertices vertices into the position layout the
// precomputed table's entries assume.
type RelabelResult struct {
	TooManyVertices bool
	Identity        bool
	PermutationHash string
	OldToNew        map[swap.Vertex]int
	NewToOld        map[int]swap.Vertex
}

// CanonicalRelabelling decomposes m (assumed total: every key's target is
// also a key) into disjoint cycles, orders them by decreasing length
// (ties broken by ascending minimum vertex, which the scan order already
// produces), and concatenates them into contiguous index blocks starting at
// 0. PermutationHash is the cycle lengths in that order, base-10 digits
// concatenated, skipping length-1 (fixed-point) cycles.
func CanonicalRelabelling(m swap.VertexMapping) RelabelResult {
	if len(m) > MaxTableVertices {
		return RelabelResult{TooManyVertices: true}
	}
	if swap.AllHome(m) {
		return RelabelResult{Identity: true, OldToNew: map[swap.Vertex]int{}, NewToOld: map[int]swap.Vertex{}}
	}

	keys := swap.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	visited := make(map[swap.Vertex]bool, len(keys))
	var cycles [][]swap.Vertex
	for _, start := range keys {
		if visited[start] {
			continue
		}
		cycle := []swap.Vertex{start}
		visited[start] = true
		for cur := m[start]; cur != start; cur = m[cur] {
			cycle = append(cycle, cur)
			visited[cur] = true
		}
		cycles = append(cycles, cycle)
	}

	sort.SliceStable(cycles, func(i, j int) bool { return len(cycles[i]) > len(cycles[j]) })

	oldToNew := make(map[swap.Vertex]int, len(m))
	newToOld := make(map[int]swap.Vertex, len(m))
	hashDigits := make([]byte, 0, len(cycles))
	next := 0
	for _, cyc := range cycles {
		if len(cyc) > 1 {
			hashDigits = append(hashDigits, byte('0'+len(cyc)))
		}
		for _, v := range cyc {
			oldToNew[v] = next
			newToOld[next] = v
			next++
		}
	}

	return RelabelResult{
		PermutationHash: string(hashDigits),
		OldToNew:        oldToNew,
		NewToOld:        newToOld,
	}
}

// isCanonicalPosition reports whether rel's relabelling is the identity,
// i.e. the mapping it was computed from is already laid out the way the
// precomputed table stores its entries.
func (r RelabelResult) isCanonicalPosition() bool {
	for old, n := range r.OldToNew {
		if swap.Vertex(n) != old {
			return false
		}
	}

	return true
}
