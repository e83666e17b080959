package tableopt

import (
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/swapopt"
)

// TableOptimiser repeatedly sweeps a swap list forward and backward with a
// SegmentOptimiser, splicing in every table-backed shortcut it finds, until
// a full forward+backward round makes no further progress.
type TableOptimiser struct {
	seg *SegmentOptimiser
}

// NewTableOptimiser returns a TableOptimiser driven by seg.
func NewTableOptimiser(seg *SegmentOptimiser) *TableOptimiser {
	return &TableOptimiser{seg: seg}
}

// Optimise mutates list in place. tokensAtStart is the (sparse, absent-means-
// empty) mapping of tokens present immediately before list's first swap.
func (t *TableOptimiser) Optimise(tokensAtStart swap.VertexMapping, list *swaplist.List) {
	tokensAtEnd := computeTokensAtEnd(tokensAtStart, list)

	for {
		before := list.Size()

		t.forwardPass(tokensAtStart, list)
		list.Arena().Reverse()
		t.forwardPass(tokensAtEnd, list)
		list.Arena().Reverse()

		if list.Size() >= before {
			return
		}
	}
}

// computeTokensAtEnd walks list once, applying every swap to a copy of
// tokensAtStart and erasing any swap that turns out to move nothing, and
// returns the resulting end-of-list token state.
func computeTokensAtEnd(tokensAtStart swap.VertexMapping, list *swaplist.List) swap.VertexMapping {
	m := swap.Clone(tokensAtStart)

	h := list.Front()
	for h != swaplist.InvalidHandle {
		next := list.Next(h)
		if swap.ApplyOne(m, list.Value(h)) == 0 {
			list.Erase(h)
		}
		h = next
	}

	return m
}

// forwardPass runs one direction of a sweep: a frontward travel pass to
// reposition cancellable swaps, an optimise-segment call from the front, and
// then one more optimise-segment call from every subsequent position as the
// running token state advances one swap at a time.
func (t *TableOptimiser) forwardPass(tokensAtStart swap.VertexMapping, list *swaplist.List) {
	swapopt.FrontwardTravelPass(list)

	running := swap.Clone(tokensAtStart)
	t.seg.OptimiseSegment(list, list.Front(), running)

	h := list.Front()
	for h != swaplist.InvalidHandle {
		swap.ApplyOne(running, list.Value(h))
		next := list.Next(h)

		t.seg.OptimiseSegment(list, next, running)

		h = list.Next(h)
	}
}
