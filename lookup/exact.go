package lookup

import (
	"errors"

	"github.com/katalvlaran/tokswap/swap"
)

// ErrTooManyVertices indicates a mapping with more than MaxTableVertices
// involved vertices; it is outside the precomputed table's domain and must
// first be shrunk (see Resizer).
var ErrTooManyVertices = errors.New("lookup: mapping has more than 6 involved vertices")

// ExactMappingLookup relabels m into canonical position, rewrites edgesAmong
// into the canonical EdgesBitset, and queries the global table for the
// shortest sequence obeying maxSwaps. On a hit, the sequence is decoded back
// into m's original vertex labels.
//
// edgesAmong reports whether a swap between two of m's vertices is
// available (normally backed by the caller's graph neighbours).
func ExactMappingLookup(m swap.VertexMapping, edgesAmong func(a, b swap.Vertex) bool, maxSwaps int) (swap.Sequence, bool, error) {
	rel := CanonicalRelabelling(m)
	if rel.TooManyVertices {
		return nil, false, ErrTooManyVertices
	}
	if rel.Identity {
		return swap.Sequence{}, true, nil
	}

	n := len(rel.NewToOld)
	var allowed EdgesBitset
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !edgesAmong(rel.NewToOld[i], rel.NewToOld[j]) {
				continue
			}
			idx, err := PairToIndex(i, j)
			if err != nil {
				return nil, false, err
			}
			allowed |= 1 << uint(idx-1)
		}
	}

	fs := GlobalTable().Lookup(rel.PermutationHash)
	if fs == nil {
		return nil, false, nil
	}

	code, ok := fs.GetLookupResult(allowed, maxSwaps)
	if !ok {
		return nil, false, nil
	}

	indices := DecodeSwaps(code)
	out := make(swap.Sequence, 0, len(indices))
	for _, idx := range indices {
		a, b := IndexToPair(idx)
		out = append(out, swap.MustSwap(rel.NewToOld[a], rel.NewToOld[b]))
	}

	return out, true, nil
}
