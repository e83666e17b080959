package cycles

import "github.com/katalvlaran/tokswap/swap"

// Options tunes how aggressively the growth and candidate-selection steps
// search and filter.
type Options struct {
	// MaxCycleSize caps how many vertices a grown path may reach before
	// growth is forced to stop.
	MaxCycleSize int

	// MaxNumberOfCycles caps the candidate pool at every stage.
	MaxNumberOfCycles int

	// MinDecreaseForPartialPath is a floor on the absolute decrease a grown
	// path must keep accumulating to survive a growth round.
	MinDecreaseForPartialPath int

	// MinPowerPercentageForPartialPath is a floor, expressed as a percentage
	// of the path's move count, on the decrease a grown path must keep.
	MinPowerPercentageForPartialPath int

	// ReturnAllGoodSingleSwaps, if false (default), keeps only the
	// maximum-decrease candidates among length-1-move (two-vertex) cycles.
	ReturnAllGoodSingleSwaps bool

	// ReturnLowerPowerSolutionsForMultiswapCandidates, if false (default),
	// keeps only the maximum-decrease candidates among longer cycles.
	ReturnLowerPowerSolutionsForMultiswapCandidates bool
}

// DefaultOptions returns the reference tuning: six-vertex cap, a thousand
// candidate cycles, no partial-path floors, and the stricter (max-decrease
// only) filtering for both single-swap and multi-swap candidates.
func DefaultOptions() Options {
	return Options{
		MaxCycleSize:      6,
		MaxNumberOfCycles: 1000,
	}
}

// Cycle is a grown (possibly not yet closed) path of vertices: consecutive
// vertices are adjacent in the graph. Decrease is the progress-metric L
// reduction this path's vertices have accumulated so far, per the growth
// history that produced it (see GrowthManager).
type Cycle struct {
	Decrease int
	Vertices []swap.Vertex
}

// NumMoves is the number of edges in the path (one fewer than its vertex count).
func (c Cycle) NumMoves() int { return len(c.Vertices) - 1 }

// Power is the decrease-per-move percentage, always <= 100.
func (c Cycle) Power() int {
	moves := c.NumMoves()
	if moves <= 0 {
		return 0
	}

	return 100 * c.Decrease / moves
}

func ceilDiv(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}

	return (numerator + denominator - 1) / denominator
}

func targetOf(m swap.VertexMapping, v swap.Vertex) swap.Vertex {
	if t, ok := m[v]; ok {
		return t
	}

	return v
}

func maxInt(vals ...int) int {
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}

	return best
}
