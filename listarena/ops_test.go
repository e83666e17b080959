package listarena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/listarena"
)

func collect(a *listarena.Arena[int]) []int {
	var out []int
	a.Walk(func(_ listarena.Handle, v int) { out = append(out, v) })

	return out
}

func TestPushBackAndFront(t *testing.T) {
	a := listarena.New[int](0)
	a.PushBack(1)
	a.PushBack(2)
	a.PushFront(0)

	assert.Equal(t, []int{0, 1, 2}, collect(a))
	assert.Equal(t, 3, a.Size())
}

func TestInsertAfterBefore(t *testing.T) {
	a := listarena.New[int](0)
	h1 := a.PushBack(1)
	a.InsertAfter(h1, 2)
	a.InsertBefore(h1, 0)

	assert.Equal(t, []int{0, 1, 2}, collect(a))
}

func TestEraseKeepsOtherHandlesStable(t *testing.T) {
	a := listarena.New[int](0)
	h1 := a.PushBack(1)
	h2 := a.PushBack(2)
	h3 := a.PushBack(3)

	a.Erase(h2)

	assert.Equal(t, []int{1, 3}, collect(a))
	assert.Equal(t, 1, a.Value(h1))
	assert.Equal(t, 3, a.Value(h3))
	assert.Equal(t, h3, a.Next(h1))
}

func TestPopFrontBack(t *testing.T) {
	a := listarena.New[int](0)
	a.PushBack(1)
	a.PushBack(2)
	a.PushBack(3)

	assert.Equal(t, 1, a.PopFront())
	assert.Equal(t, 3, a.PopBack())
	assert.Equal(t, []int{2}, collect(a))
}

func TestEraseIntervalAndOverwriteInterval(t *testing.T) {
	a := listarena.New[int](0)
	a.PushBack(1)
	h2 := a.PushBack(2)
	a.PushBack(3)
	a.PushBack(4)
	a.PushBack(5)

	a.OverwriteInterval(h2, []int{20, 30})
	assert.Equal(t, []int{1, 20, 30, 4, 5}, collect(a))

	a.EraseInterval(h2, 2)
	assert.Equal(t, []int{1, 4, 5}, collect(a))
}

func TestClearAndFastClearRecycleCapacity(t *testing.T) {
	a := listarena.New[int](0)
	a.PushBack(1)
	a.PushBack(2)

	a.FastClear()
	assert.True(t, a.Empty())
	assert.Equal(t, listarena.InvalidHandle, a.FrontID())

	h := a.PushBack(9)
	assert.Equal(t, []int{9}, collect(a))
	assert.Equal(t, 9, a.Value(h))

	a.Clear()
	assert.True(t, a.Empty())
}

func TestReverseIsInvolution(t *testing.T) {
	a := listarena.New[int](0)
	for i := 0; i < 5; i++ {
		a.PushBack(i)
	}

	a.Reverse()
	assert.Equal(t, []int{4, 3, 2, 1, 0}, collect(a))

	a.Reverse()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(a))
}

func TestEraseInvalidHandlePanics(t *testing.T) {
	a := listarena.New[int](0)
	h := a.PushBack(1)
	a.Erase(h)

	require.Panics(t, func() { a.Erase(h) })
}
