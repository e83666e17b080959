// Package swap defines the data model shared by every token-swapping component:
// vertices, unordered swaps, partial vertex-to-vertex mappings and swap sequences.
//
// None of the types here know about graphs, heuristics or the lookup table; they
// are the vocabulary the rest of the module is built from.
package swap

import "errors"

// Sentinel errors for the token-swapping data model.
var (
	// ErrInvalidSwap indicates an attempt to build a Swap whose two endpoints are equal.
	ErrInvalidSwap = errors.New("swap: endpoints must differ")

	// ErrDuplicateTarget indicates a VertexMapping in which two keys share a target vertex.
	ErrDuplicateTarget = errors.New("swap: duplicate target vertex")
)

// Vertex is an opaque, non-negative integer handle. It need not be contiguous;
// the valid range is whatever the graph oracle in use considers addressable.
type Vertex uint64

// Swap is an unordered pair of distinct vertices, stored canonically with A < B
// so that two swaps naming the same pair always compare equal.
type Swap struct {
	A Vertex
	B Vertex
}

// NewSwap builds a canonical Swap over a and b.
//
// Errors: ErrInvalidSwap if a == b.
func NewSwap(a, b Vertex) (Swap, error) {
	if a == b {
		return Swap{}, ErrInvalidSwap
	}
	if a > b {
		a, b = b, a
	}

	return Swap{A: a, B: b}, nil
}

// MustSwap is NewSwap for call sites that already know a != b (test helpers,
// decoders working off a table already validated at construction).
func MustSwap(a, b Vertex) Swap {
	s, err := NewSwap(a, b)
	if err != nil {
		panic(err)
	}

	return s
}

// Has reports whether v is one of the swap's two endpoints.
func (s Swap) Has(v Vertex) bool {
	return s.A == v || s.B == v
}

// Disjoint reports whether s and other share no vertex, i.e. whether the two
// swaps commute when applied to any mapping.
func (s Swap) Disjoint(other Swap) bool {
	return !s.Has(other.A) && !s.Has(other.B)
}

// Other returns the endpoint of s that is not v. Behaviour is unspecified if
// v is not an endpoint of s.
func (s Swap) Other(v Vertex) Vertex {
	if s.A == v {
		return s.B
	}

	return s.A
}
