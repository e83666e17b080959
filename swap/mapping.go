package swap

// VertexMapping is a partial injection current-vertex -> target-vertex: each
// key holds a token that wants to reach the mapped value. Keys and values are
// each unique; CheckMapping verifies the value side.
type VertexMapping map[Vertex]Vertex

// CheckMapping reports whether m is a valid injection (no two keys share a target).
//
// Complexity: O(n).
func CheckMapping(m VertexMapping) error {
	seen := make(map[Vertex]struct{}, len(m))
	for _, target := range m {
		if _, dup := seen[target]; dup {
			return ErrDuplicateTarget
		}
		seen[target] = struct{}{}
	}

	return nil
}

// AllHome reports whether every token in m already sits on its target.
func AllHome(m VertexMapping) bool {
	for v, t := range m {
		if v != t {
			return false
		}
	}

	return true
}

// Clone returns an independent shallow copy of m.
func Clone(m VertexMapping) VertexMapping {
	out := make(VertexMapping, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Keys returns the current-vertex key set of m in unspecified order.
func Keys(m VertexMapping) []Vertex {
	out := make([]Vertex, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

// Identity builds the identity mapping over the given vertices (every vertex
// maps to itself), the canonical starting point for replaying a SwapSequence.
func Identity(vertices []Vertex) VertexMapping {
	m := make(VertexMapping, len(vertices))
	for _, v := range vertices {
		m[v] = v
	}

	return m
}

// Inverse returns the mapping with keys and values swapped. Callers must only
// invoke this on a valid injection (see CheckMapping); behaviour is otherwise
// unspecified since the result may silently drop colliding keys.
func Inverse(m VertexMapping) VertexMapping {
	out := make(VertexMapping, len(m))
	for k, v := range m {
		out[v] = k
	}

	return out
}
