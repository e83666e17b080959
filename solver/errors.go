package solver

import "errors"

// ErrUnmatchedLogicalQubit indicates the initial and desired logical-to-
// physical maps passed to SolveOnArchitecture have different key sets.
var ErrUnmatchedLogicalQubit = errors.New("solver: initial and desired logical maps have mismatched keys")
