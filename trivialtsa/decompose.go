package trivialtsa

import (
	"sort"

	"github.com/katalvlaran/tokswap/swap"
)

// DecomposeCycles splits m into its disjoint cycle/chain components,
// following m forward from each unseen token-bearing vertex until it wraps
// back to its start (a true cycle) or reaches a vertex with no token (a
// sink, ending an open chain). When a walk ends at a sink, the chain is
// completed backward, via the reverse mapping, from its starting vertex, so
// the returned component always spans every vertex touched by this chain.
//
// Iteration order over keys(m) is sorted for determinism (Go map order is
// not stable), matching the platform-independence every other component of
// this solver requires.
func DecomposeCycles(m swap.VertexMapping) [][]swap.Vertex {
	keys := swap.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	inv := swap.Inverse(m)
	visited := make(map[swap.Vertex]bool, len(m))
	var components [][]swap.Vertex

	for _, start := range keys {
		if visited[start] {
			continue
		}

		path := []swap.Vertex{start}
		visited[start] = true
		cur := start
		for {
			next, ok := m[cur]
			if !ok || next == start || visited[next] {
				break
			}
			path = append(path, next)
			visited[next] = true
			cur = next
		}

		last := path[len(path)-1]
		if _, isKey := m[last]; !isKey {
			cur = start
			for {
				u, ok := inv[cur]
				if !ok || visited[u] {
					break
				}
				path = append([]swap.Vertex{u}, path...)
				visited[u] = true
				cur = u
			}
		}

		components = append(components, path)
	}

	return components
}

// IsClosed reports whether path is a true cycle (its last vertex maps back
// to its first) rather than an open chain ending at a sink.
func IsClosed(m swap.VertexMapping, path []swap.Vertex) bool {
	if len(path) < 2 {
		return false
	}
	last := path[len(path)-1]
	target, ok := m[last]

	return ok && target == path[0]
}
