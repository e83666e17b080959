package listarena

// alloc returns a fresh handle holding v, taking it from the free stack when
// possible and only growing the backing slice when the free stack is empty.
func (a *Arena[T]) alloc(v T) Handle {
	if a.freeHead != InvalidHandle {
		h := a.freeHead
		a.freeHead = a.nodes[h].next
		a.nodes[h] = node[T]{prev: InvalidHandle, next: InvalidHandle, value: v, active: true}

		return h
	}

	a.nodes = append(a.nodes, node[T]{prev: InvalidHandle, next: InvalidHandle, value: v, active: true})

	return Handle(len(a.nodes) - 1)
}

// PushBack appends v as the new tail. Complexity: O(1) amortised.
func (a *Arena[T]) PushBack(v T) Handle {
	h := a.alloc(v)
	a.linkAfter(a.tail, h)

	return h
}

// PushFront prepends v as the new head. Complexity: O(1) amortised.
func (a *Arena[T]) PushFront(v T) Handle {
	h := a.alloc(v)
	a.linkBefore(a.head, h)

	return h
}

// InsertAfter inserts v immediately after h, returning the new handle.
// Complexity: O(1) amortised.
func (a *Arena[T]) InsertAfter(h Handle, v T) Handle {
	a.slot(h) // validate
	n := a.alloc(v)
	a.linkAfter(h, n)

	return n
}

// InsertBefore inserts v immediately before h, returning the new handle.
// Complexity: O(1) amortised.
func (a *Arena[T]) InsertBefore(h Handle, v T) Handle {
	a.slot(h) // validate
	n := a.alloc(v)
	a.linkBefore(h, n)

	return n
}

// linkAfter splices freshly-allocated node n into the active list right after
// after (InvalidHandle meaning "at the very front").
func (a *Arena[T]) linkAfter(after, n Handle) {
	if after == InvalidHandle {
		// list was empty: n becomes the sole node.
		a.nodes[n].prev = InvalidHandle
		a.nodes[n].next = a.head
		if a.head != InvalidHandle {
			a.nodes[a.head].prev = n
		}
		a.head = n
		if a.tail == InvalidHandle {
			a.tail = n
		}
	} else {
		next := a.nodes[after].next
		a.nodes[n].prev = after
		a.nodes[n].next = next
		a.nodes[after].next = n
		if next != InvalidHandle {
			a.nodes[next].prev = n
		} else {
			a.tail = n
		}
	}
	a.size++
}

// linkBefore splices freshly-allocated node n into the active list right
// before, before (InvalidHandle meaning "at the very back").
func (a *Arena[T]) linkBefore(before, n Handle) {
	if before == InvalidHandle {
		a.nodes[n].next = InvalidHandle
		a.nodes[n].prev = a.tail
		if a.tail != InvalidHandle {
			a.nodes[a.tail].next = n
		}
		a.tail = n
		if a.head == InvalidHandle {
			a.head = n
		}
	} else {
		prev := a.nodes[before].prev
		a.nodes[n].next = before
		a.nodes[n].prev = prev
		a.nodes[before].prev = n
		if prev != InvalidHandle {
			a.nodes[prev].next = n
		} else {
			a.head = n
		}
	}
	a.size++
}

// unlink removes h from the active list without recycling it.
func (a *Arena[T]) unlink(h Handle) {
	nd := &a.nodes[h]
	if nd.prev != InvalidHandle {
		a.nodes[nd.prev].next = nd.next
	} else {
		a.head = nd.next
	}
	if nd.next != InvalidHandle {
		a.nodes[nd.next].prev = nd.prev
	} else {
		a.tail = nd.prev
	}
	a.size--
}

// recycle marks h free and pushes it onto the free stack. h must already be unlinked.
func (a *Arena[T]) recycle(h Handle) {
	var zero T
	a.nodes[h] = node[T]{prev: InvalidHandle, next: a.freeHead, value: zero, active: false}
	a.freeHead = h
}

// Erase removes h from the list, invalidating it. Complexity: O(1).
func (a *Arena[T]) Erase(h Handle) {
	a.slot(h)
	a.unlink(h)
	a.recycle(h)
}

// PopBack erases and returns the value of the current tail.
// Complexity: O(1). Panics if the arena is empty.
func (a *Arena[T]) PopBack() T {
	h := a.tail
	v := a.slot(h).value
	a.Erase(h)

	return v
}

// PopFront erases and returns the value of the current head.
// Complexity: O(1). Panics if the arena is empty.
func (a *Arena[T]) PopFront() T {
	h := a.head
	v := a.slot(h).value
	a.Erase(h)

	return v
}

// EraseInterval erases k consecutive nodes starting at h (inclusive),
// following Next links. Complexity: O(k).
func (a *Arena[T]) EraseInterval(h Handle, k int) {
	for i := 0; i < k; i++ {
		a.slot(h)
		next := a.nodes[h].next
		a.Erase(h)
		h = next
	}
}

// OverwriteInterval sequentially assigns values to the k existing nodes
// starting at h (following Next links), where k == len(values). It returns
// the handle of the last overwritten node. Complexity: O(k).
//
// This reuses existing nodes' identities (handles are preserved) instead of
// erasing and re-inserting, which is the whole point when the caller (the
// segment/table optimiser) wants to replace the contents of a window without
// disturbing handles held by code iterating past the window.
func (a *Arena[T]) OverwriteInterval(h Handle, values []T) Handle {
	last := h
	for _, v := range values {
		a.slot(h)
		a.nodes[h].value = v
		last = h
		h = a.nodes[h].next
	}

	return last
}

// Clear resets the arena to empty, dropping the backing slice's contents.
// Complexity: O(n); invalidates every handle.
func (a *Arena[T]) Clear() {
	a.nodes = a.nodes[:0]
	a.head = InvalidHandle
	a.tail = InvalidHandle
	a.freeHead = InvalidHandle
	a.size = 0
}

// FastClear recycles every active node onto the free stack without shrinking
// the backing slice. Complexity: O(n) (it must walk the active list to
// thread the free stack), but reuses capacity on the next burst of inserts.
// Handle numbers obtained before FastClear must not be reused afterwards.
func (a *Arena[T]) FastClear() {
	h := a.head
	for h != InvalidHandle {
		next := a.nodes[h].next
		a.recycle(h)
		h = next
	}
	a.head = InvalidHandle
	a.tail = InvalidHandle
	a.size = 0
}

// Reverse reverses the active list in place by swapping prev/next on every
// active node. Complexity: O(n).
func (a *Arena[T]) Reverse() {
	h := a.head
	for h != InvalidHandle {
		nd := &a.nodes[h]
		nd.prev, nd.next = nd.next, nd.prev
		h = nd.prev // prev now holds the old next
	}
	a.head, a.tail = a.tail, a.head
}

// Walk calls fn for every active value from front to back. It is provided as
// a convenience for callers that only need read access; fn must not mutate
// the arena.
func (a *Arena[T]) Walk(fn func(h Handle, v T)) {
	for h := a.head; h != InvalidHandle; h = a.nodes[h].next {
		fn(h, a.nodes[h].value)
	}
}
