package tokentracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/tokentracker"
)

func TestDoVertexSwapExchangesIdentities(t *testing.T) {
	tr := tokentracker.New()

	ts := tr.DoVertexSwap(swap.MustSwap(0, 1))
	assert.Equal(t, tokentracker.TokenSwap{X: 0, Y: 1}, ts)
	assert.Equal(t, swap.Vertex(1), tr.IdentityAt(0))
	assert.Equal(t, swap.Vertex(0), tr.IdentityAt(1))
}

func TestRepeatedPairCancelsToIdentity(t *testing.T) {
	tr := tokentracker.New()
	tr.DoVertexSwap(swap.MustSwap(0, 1))
	tr.DoVertexSwap(swap.MustSwap(0, 1))

	assert.Equal(t, swap.Vertex(0), tr.IdentityAt(0))
	assert.Equal(t, swap.Vertex(1), tr.IdentityAt(1))
}

func TestResetRestoresIdentity(t *testing.T) {
	tr := tokentracker.New()
	tr.DoVertexSwap(swap.MustSwap(2, 3))
	tr.Reset()

	assert.Equal(t, swap.Vertex(2), tr.IdentityAt(2))
	assert.Equal(t, swap.Vertex(3), tr.IdentityAt(3))
}

func TestEqualPermutationAccountsForUntouchedVertices(t *testing.T) {
	a := tokentracker.New()
	a.DoVertexSwap(swap.MustSwap(0, 1))

	b := tokentracker.New()
	b.DoVertexSwap(swap.MustSwap(0, 1))
	b.DoVertexSwap(swap.MustSwap(1, 0)) // same pair swapped back: net identity

	assert.False(t, tokentracker.EqualPermutation(a, b))
}

func TestEqualPermutationTrue(t *testing.T) {
	a := tokentracker.New()
	a.DoVertexSwap(swap.MustSwap(0, 1))
	a.DoVertexSwap(swap.MustSwap(1, 2))

	b := tokentracker.New()
	b.DoVertexSwap(swap.MustSwap(1, 2))
	b.DoVertexSwap(swap.MustSwap(0, 2))

	assert.True(t, tokentracker.EqualPermutation(a, b))
}
