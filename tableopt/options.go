package tableopt

import "github.com/katalvlaran/tokswap/lookup"

// Options tunes the segment/table optimiser.
type Options struct {
	// MaxConsecutiveFailures bounds how many consecutive "window has more
	// than TargetVertices live vertices and cannot shrink" failures a
	// segment walk tolerates before giving up on that starting point.
	MaxConsecutiveFailures int

	// MaxEmptyPermutations bounds how many assignments of empty/transient
	// vertices PartialMappingLookup tries per candidate window.
	MaxEmptyPermutations int

	// TargetVertices is the window size resized toward before a table
	// query; it must not exceed lookup.MaxTableVertices.
	TargetVertices int
}

// DefaultOptions returns the tuning spec.md's segment optimiser describes:
// five consecutive failures tolerated, windows resized to the full 6-vertex
// table domain.
func DefaultOptions() Options {
	return Options{
		MaxConsecutiveFailures: 5,
		MaxEmptyPermutations:   24,
		TargetVertices:         lookup.MaxTableVertices,
	}
}
