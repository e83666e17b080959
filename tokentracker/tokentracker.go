// Package tokentracker follows how a sequence of vertex-swaps permutes token
// identities, independent of any target mapping. The algebraic passes in
// package swapopt use it to recognise when two vertex-swaps, applied at
// different points in a sequence, induce the identical exchange of token
// identities and can therefore cancel.
package tokentracker

import "github.com/katalvlaran/tokswap/swap"

// TokenSwap is the exchange of two token identities a vertex-swap induced.
// It is stored canonically (X < Y) so two inductions of the same exchange
// compare equal regardless of which vertex-swap produced them.
type TokenSwap struct {
	X swap.Vertex
	Y swap.Vertex
}

func canonicalTokenSwap(x, y swap.Vertex) TokenSwap {
	if x > y {
		x, y = y, x
	}

	return TokenSwap{X: x, Y: y}
}

// Tracker is a lazily-populated map from vertex to the identity of the token
// currently sitting on it. A vertex never explicitly recorded is assumed to
// hold its own identity (the token that started there).
//
// Not safe for concurrent use.
type Tracker struct {
	occupant map[swap.Vertex]swap.Vertex
}

// New returns a Tracker in which every vertex holds its own identity.
func New() *Tracker {
	return &Tracker{occupant: make(map[swap.Vertex]swap.Vertex)}
}

// IdentityAt returns the identity of the token currently on v.
func (t *Tracker) IdentityAt(v swap.Vertex) swap.Vertex {
	if id, ok := t.occupant[v]; ok {
		return id
	}

	return v
}

// DoVertexSwap applies the vertex-swap s, exchanging whatever identities
// currently sit on its two endpoints, and returns the TokenSwap this
// induced.
func (t *Tracker) DoVertexSwap(s swap.Swap) TokenSwap {
	idA := t.IdentityAt(s.A)
	idB := t.IdentityAt(s.B)
	t.occupant[s.A] = idB
	t.occupant[s.B] = idA

	return canonicalTokenSwap(idA, idB)
}

// Reset reassigns every known vertex back to its own identity.
func (t *Tracker) Reset() {
	t.occupant = make(map[swap.Vertex]swap.Vertex)
}

// EqualPermutation reports whether a and b represent the same overall vertex
// permutation: for every vertex either has touched, the two agree on which
// identity sits there now (a vertex untouched by one tracker is implicitly
// fixed — holding its own identity — which is compared the same as if that
// tracker had recorded it explicitly).
func EqualPermutation(a, b *Tracker) bool {
	seen := make(map[swap.Vertex]struct{}, len(a.occupant)+len(b.occupant))
	for v := range a.occupant {
		seen[v] = struct{}{}
	}
	for v := range b.occupant {
		seen[v] = struct{}{}
	}
	for v := range seen {
		if a.IdentityAt(v) != b.IdentityAt(v) {
			return false
		}
	}

	return true
}
