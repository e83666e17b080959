// Package hybridtsa combines package cycles' partial-cycle-growth heuristic
// with package trivialtsa's break-after-progress heuristic into a single
// outer loop: run the cycle heuristic until it stalls, then force at least
// one unit of progress with trivialtsa, and repeat. Neither heuristic alone
// guarantees termination on every mapping (cycles can stall on mappings it
// has no candidate for; trivialtsa alone ignores the cheaper multi-token
// cycle rotations cycles finds), but alternating them does, bounded by the
// progress metric's own starting value.
package hybridtsa
