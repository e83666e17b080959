// Package swaplist is a thin, typed wrapper of listarena.Arena[swap.Swap]: the
// mutable sequence every solver component (cycles, trivialtsa, hybridtsa,
// swapopt, tableopt) appends to and rewrites in place.
package swaplist

import (
	"github.com/katalvlaran/tokswap/listarena"
	"github.com/katalvlaran/tokswap/swap"
)

// Handle re-exports listarena.Handle so callers need not import listarena directly.
type Handle = listarena.Handle

// InvalidHandle re-exports listarena.InvalidHandle.
const InvalidHandle = listarena.InvalidHandle

// List is an ordered sequence of swaps backed by a listarena.Arena.
type List struct {
	arena *listarena.Arena[swap.Swap]
}

// New returns an empty List.
func New() *List {
	return &List{arena: listarena.New[swap.Swap](0)}
}

// Arena exposes the backing arena for packages (swapopt, tableopt) that need
// the full intrusive-list operation set (InsertAfter, EraseInterval, Reverse, ...).
func (l *List) Arena() *listarena.Arena[swap.Swap] { return l.arena }

// Size returns the number of swaps currently in the list.
func (l *List) Size() int { return l.arena.Size() }

// Empty reports whether the list holds no swaps.
func (l *List) Empty() bool { return l.arena.Empty() }

// Front returns the handle of the first swap, or InvalidHandle if empty.
func (l *List) Front() Handle { return l.arena.FrontID() }

// Back returns the handle of the last swap, or InvalidHandle if empty.
func (l *List) Back() Handle { return l.arena.BackID() }

// Next returns the handle following h.
func (l *List) Next(h Handle) Handle { return l.arena.Next(h) }

// Previous returns the handle preceding h.
func (l *List) Previous(h Handle) Handle { return l.arena.Previous(h) }

// Erase removes h from the list. Used by the optimiser passes (package
// swapopt), which need to delete arbitrary interior swaps, something the
// peephole-only PushBack does not support.
func (l *List) Erase(h Handle) { l.arena.Erase(h) }

// Value returns the swap stored at h.
func (l *List) Value(h Handle) swap.Swap { return l.arena.Value(h) }

// PushBack appends s, with trivial peephole cancellation: if s equals the
// current back swap, both are erased (two identical adjacent swaps are a
// no-op on any mapping); otherwise s is appended as the new back.
//
// Complexity: O(1) amortised.
func (l *List) PushBack(s swap.Swap) {
	if back := l.arena.BackID(); back != InvalidHandle && l.arena.Value(back) == s {
		l.arena.Erase(back)

		return
	}
	l.arena.PushBack(s)
}

// ToSlice materialises the list as a swap.Sequence, front to back.
func (l *List) ToSlice() swap.Sequence {
	out := make(swap.Sequence, 0, l.arena.Size())
	l.arena.Walk(func(_ Handle, v swap.Swap) { out = append(out, v) })

	return out
}

// FromSlice replaces the list's contents with seq, bypassing peephole
// cancellation (the caller is handing us an already-settled sequence).
func (l *List) FromSlice(seq swap.Sequence) {
	l.arena.Clear()
	for _, s := range seq {
		l.arena.PushBack(s)
	}
}
