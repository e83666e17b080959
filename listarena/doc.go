// Package listarena implements an intrusive doubly-linked list stored inside a
// growable slice: a ListArena. Every node lives at a stable slice index (its
// Handle) for as long as it is active, giving O(1) insert/erase without the
// per-node heap allocations a container/list-style implementation would pay.
//
// Deleted slots are recycled through a singly-linked free stack threaded
// through the same slice, so repeated insert/erase cycles do not grow the
// backing array once it has reached a high-water mark.
//
// Handles are stable across mutation of *other* nodes; a handle is only
// invalidated by erasing the node it names, or by Clear. FastClear recycles
// every active node onto the free stack without renumbering, so a handle
// obtained before a FastClear must not be reused afterwards even though the
// numeric value might coincidentally still be in range.
//
// The zero value is not useful; construct with New.
package listarena
