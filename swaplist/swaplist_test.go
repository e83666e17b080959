package swaplist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

func TestPushBackPeepholeCancellation(t *testing.T) {
	l := swaplist.New()
	l.PushBack(swap.MustSwap(0, 1))
	l.PushBack(swap.MustSwap(1, 2))
	l.PushBack(swap.MustSwap(1, 2)) // cancels with previous

	assert.Equal(t, swap.Sequence{swap.MustSwap(0, 1)}, l.ToSlice())
}

func TestPushBackDistinctAppends(t *testing.T) {
	l := swaplist.New()
	l.PushBack(swap.MustSwap(0, 1))
	l.PushBack(swap.MustSwap(2, 3))

	assert.Equal(t, 2, l.Size())
}

func TestFromSliceRoundTrip(t *testing.T) {
	l := swaplist.New()
	seq := swap.Sequence{swap.MustSwap(0, 1), swap.MustSwap(1, 2)}
	l.FromSlice(seq)

	assert.Equal(t, seq, l.ToSlice())
}
