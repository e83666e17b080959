package trivialtsa

import (
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// AppendSwapsToInterchangePathEnds realises, along the concrete graph path
// [p0..pm], the single effect "exchange whatever is at p0 with whatever is
// at pm, leaving every intermediate vertex's occupant unchanged" using only
// real edges of the path. It emits, left to right:
//
//	(pm,pm-1), (pm-1,pm-2), ..., (p1,p0)   -- walk pm's occupant to p0
//	(p2,p1), (p3,p2), ..., (pm,pm-1)       -- walk p0's occupant from p1 to pm, restoring the middle
//
// the degenerate single-edge case (m==1) is just the one swap (p1,p0).
// Swaps that would be empty (neither endpoint holding a token at the point
// they are reached) are skipped. Returns the swaps actually appended, which
// is also how many tokens it moved in total.
func AppendSwapsToInterchangePathEnds(list *swaplist.List, m swap.VertexMapping, path []swap.Vertex) []swap.Swap {
	n := len(path) - 1
	if n <= 0 {
		return nil
	}

	var emitted []swap.Swap
	apply := func(a, b swap.Vertex) {
		s := swap.MustSwap(a, b)
		if swap.ApplyOne(m, s) == 0 {
			return
		}
		list.PushBack(s)
		emitted = append(emitted, s)
	}

	for i := n; i >= 1; i-- {
		apply(path[i], path[i-1])
	}
	for i := 2; i <= n; i++ {
		apply(path[i], path[i-1])
	}

	return emitted
}
