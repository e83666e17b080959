package swapopt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/swapopt"
)

func newList(t *testing.T, seq swap.Sequence) *swaplist.List {
	t.Helper()
	l := swaplist.New()
	l.FromSlice(seq)

	return l
}

func TestRemoveEmptySwapsDropsUntouchedSwaps(t *testing.T) {
	// Only vertex 0 carries a token (mapped to itself). The swap (2,3) never
	// touches a live token and must be removed; (0,1) does and survives.
	l := newList(t, swap.Sequence{swap.MustSwap(2, 3), swap.MustSwap(0, 1)})
	m := swap.VertexMapping{0: 0}

	swapopt.RemoveEmptySwaps(l, m)

	assert.Equal(t, 1, l.Size())
	assert.Equal(t, swap.MustSwap(0, 1), l.Value(l.Front()))
	assert.Equal(t, swap.VertexMapping{1: 0}, m)
}

func TestZeroTravelPassCancelsAcrossDisjointSwaps(t *testing.T) {
	// (0,1) ... (2,3) disjoint from it ... (0,1) again: the two (0,1)s cancel.
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(2, 3),
		swap.MustSwap(0, 1),
	})

	swapopt.ZeroTravelPass(l)

	assert.Equal(t, 1, l.Size())
	assert.Equal(t, swap.MustSwap(2, 3), l.Value(l.Front()))
}

func TestZeroTravelPassBlockedByNonDisjointSwap(t *testing.T) {
	// (0,1) (1,2) (0,1): the middle swap touches vertex 1, shared with both
	// (0,1) occurrences, so they must not cancel.
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(1, 2),
		swap.MustSwap(0, 1),
	})

	swapopt.ZeroTravelPass(l)

	assert.Equal(t, 3, l.Size())
}

func TestFrontwardTravelPassSlidesDisjointSwapToFront(t *testing.T) {
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(2, 3),
	})

	swapopt.FrontwardTravelPass(l)

	got := l.ToSlice()
	assert.Equal(t, swap.Sequence{swap.MustSwap(2, 3), swap.MustSwap(0, 1)}, got)
}

func TestFrontwardTravelPassStopsAtBlockingSwap(t *testing.T) {
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(1, 2),
	})

	swapopt.FrontwardTravelPass(l)

	got := l.ToSlice()
	assert.Equal(t, swap.Sequence{swap.MustSwap(0, 1), swap.MustSwap(1, 2)}, got)
}

func TestFrontwardTravelPassCancelsAtFront(t *testing.T) {
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(2, 3),
		swap.MustSwap(0, 1),
	})

	swapopt.FrontwardTravelPass(l)

	assert.Equal(t, 1, l.Size())
	assert.Equal(t, swap.MustSwap(2, 3), l.Value(l.Front()))
}

func TestTokenTrackingPassCancelsSameInducedExchange(t *testing.T) {
	// (0,1), (2,3), (0,1): the intervening (2,3) touches neither 0 nor 1, so
	// the second (0,1) exchanges the same two tokens the first one did and
	// the pass deletes both, leaving only (2,3).
	l := newList(t, swap.Sequence{
		swap.MustSwap(0, 1),
		swap.MustSwap(2, 3),
		swap.MustSwap(0, 1),
	})

	swapopt.TokenTrackingPass(l)

	assert.Equal(t, 1, l.Size())
	assert.Equal(t, swap.MustSwap(2, 3), l.Value(l.Front()))
}

func TestFullOptimiseConverges(t *testing.T) {
	l := newList(t, swap.Sequence{
		swap.MustSwap(4, 5), // touches no token, empty from the start
		swap.MustSwap(0, 1),
		swap.MustSwap(2, 3),
		swap.MustSwap(0, 1),
	})
	m := swap.VertexMapping{0: 0, 2: 2, 3: 3}

	swapopt.FullOptimise(l, m)

	assert.Equal(t, 1, l.Size())
	assert.Equal(t, swap.MustSwap(2, 3), l.Value(l.Front()))
}
