package trivialtsa

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// CyclicShiftCostEstimate estimates the real-swap cost of enacting the
// closed cycle path (path[last] wraps back to path[0]) starting the
// enactment right after its largest gap: 2*(total distance around the
// cycle, minus the largest single gap) - (number of edges - 1). This is
// the minimum, over every possible rotation/cut point, of the cost of
// enacting the cycle as an open chain — equivalently "the optimal place to
// leave the cycle open is its longest edge, since that's the one real-path
// interchange we get to skip."
//
// Returns the estimated cost and the index of the vertex the cut should
// start after (the rotation offset): rotating path so it begins at
// path[offset+1] turns the cycle into the open chain with minimum cost.
func CyclicShiftCostEstimate(path []swap.Vertex, dist oracle.Distances) (int, int, error) {
	n := len(path)
	gaps := make([]uint64, n)
	var total uint64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d, err := dist.Distance(path[i], path[j])
		if err != nil {
			return 0, 0, err
		}
		gaps[i] = d
		total += d
	}

	maxGap, maxIdx := gaps[0], 0
	for i := 1; i < n; i++ {
		if gaps[i] > maxGap {
			maxGap, maxIdx = gaps[i], i
		}
	}

	cost := 2*int(total-maxGap) - (n - 1)

	return cost, maxIdx, nil
}

// rotate returns path rotated so that it begins right after index cutAfter
// (the edge (path[cutAfter], path[cutAfter+1]) becomes the chain's open
// end, no longer enacted).
func rotate(path []swap.Vertex, cutAfter int) []swap.Vertex {
	n := len(path)
	out := make([]swap.Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = path[(cutAfter+1+i)%n]
	}

	return out
}

// BreakAfterProgress picks, among m's decomposed cycles/chains, the one
// with the smallest estimated enactment cost (closed cycles are opened at
// their longest gap first; open chains have no rotation choice), and
// enacts its abstract transpositions one at a time — stopping the instant
// the cumulative progress-metric decrease reaches at least 1, possibly
// leaving the chosen cycle only partially enacted.
//
// Reports whether it made any progress (false if m has no cycles left,
// i.e. every token is already home).
func BreakAfterProgress(m swap.VertexMapping, dist oracle.Distances, pf *pathfinder.PathFinder, list *swaplist.List) (bool, error) {
	components := DecomposeCycles(m)

	type scored struct {
		path []swap.Vertex
	}
	var best *scored
	bestCost := 0
	first := true

	for _, path := range components {
		if len(path) < 2 {
			continue
		}
		open := path
		if IsClosed(m, path) {
			cost, cut, err := CyclicShiftCostEstimate(path, dist)
			if err != nil {
				return false, err
			}
			if first || cost < bestCost {
				bestCost, first = cost, false
				best = &scored{path: rotate(path, cut)}
			}

			continue
		}
		n := len(path) - 1
		var total uint64
		for i := 0; i < n; i++ {
			d, err := dist.Distance(path[i], path[i+1])
			if err != nil {
				return false, err
			}
			total += d
		}
		cost := 2*int(total) - (n - 1)
		if first || cost < bestCost {
			bestCost, first = cost, false
			best = &scored{path: open}
		}
	}

	if best == nil {
		return false, nil
	}

	before, err := ProgressL(m, dist)
	if err != nil {
		return false, err
	}

	for i := len(best.path) - 2; i >= 0; i-- {
		concrete, err := pf.Find(best.path[i], best.path[i+1])
		if err != nil {
			return false, err
		}
		AppendSwapsToInterchangePathEnds(list, m, concrete)

		after, err := ProgressL(m, dist)
		if err != nil {
			return false, err
		}
		if before > after && before-after >= 1 {
			return true, nil
		}
		before = after
	}

	return true, nil
}
