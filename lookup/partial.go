package lookup

import "github.com/katalvlaran/tokswap/swap"

// PartialMappingLookup extends ExactMappingLookup to windows containing
// empty (tokenless) vertices: it tries up to maxPermutations assignments of
// those vertices among themselves (their final resting position doesn't
// matter, only that each ends up in one of the empty slots) and keeps the
// shortest sequence found across all of them.
//
// emptyVertices must all be fixed points of m (m[v] == v) on entry.
func PartialMappingLookup(m swap.VertexMapping, emptyVertices []swap.Vertex, edgesAmong func(a, b swap.Vertex) bool, maxSwaps, maxPermutations int) (swap.Sequence, bool, error) {
	if len(emptyVertices) == 0 {
		return ExactMappingLookup(m, edgesAmong, maxSwaps)
	}

	perms := permutationsUpTo(emptyVertices, maxPermutations)

	var best swap.Sequence
	found := false
	for _, perm := range perms {
		trial := make(swap.VertexMapping, len(m))
		for k, v := range m {
			trial[k] = v
		}
		for i, v := range emptyVertices {
			trial[v] = perm[i]
		}

		seq, ok, err := ExactMappingLookup(trial, edgesAmong, maxSwaps)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		if !found || len(seq) < len(best) {
			best, found = seq, true
		}
	}

	return best, found, nil
}

// permutationsUpTo generates permutations of vs in the order Heap's algorithm
// produces them (identity first), stopping once max have been produced. max<=0
// means "only the identity ordering".
func permutationsUpTo(vs []swap.Vertex, max int) [][]swap.Vertex {
	if max <= 0 {
		max = 1
	}

	cur := make([]swap.Vertex, len(vs))
	copy(cur, vs)

	out := make([][]swap.Vertex, 0, max)
	out = append(out, append([]swap.Vertex(nil), cur...))

	c := make([]int, len(cur))
	i := 0
	for i < len(cur) && len(out) < max {
		if c[i] < i {
			if i%2 == 0 {
				cur[0], cur[i] = cur[i], cur[0]
			} else {
				cur[c[i]], cur[i] = cur[i], cur[c[i]]
			}
			out = append(out, append([]swap.Vertex(nil), cur...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return out
}
