package cycles

import (
	"sort"

	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// GrowthManager holds the current pool of open paths being grown into
// candidate cyclic shifts.
type GrowthManager struct {
	opts   Options
	cycles []Cycle
}

// NewGrowthManager returns a GrowthManager tuned by opts.
func NewGrowthManager(opts Options) *GrowthManager {
	return &GrowthManager{opts: opts}
}

// Cycles returns the current pool, in growth order. Callers must not mutate
// the returned slice's contents.
func (gm *GrowthManager) Cycles() []Cycle { return gm.cycles }

// Reset discards the current pool and seeds it with every length-2 path
// [v, w] where v holds a token whose target is strictly closer to w than to
// v (so moving the token from v to w strictly decreases L by one). Reports
// whether any were seeded.
func (gm *GrowthManager) Reset(m swap.VertexMapping, dist oracle.Distances, neigh oracle.Neighbours) (bool, error) {
	gm.cycles = gm.cycles[:0]
	keys := swap.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, v := range keys {
		t := m[v]
		if v == t {
			continue
		}
		dv, err := dist.Distance(v, t)
		if err != nil {
			return false, err
		}
		if dv == 0 {
			continue
		}
		for _, w := range neigh.Neighbours(v) {
			dw, err := dist.Distance(w, t)
			if err != nil {
				return false, err
			}
			if dw >= dv {
				continue
			}
			gm.cycles = append(gm.cycles, Cycle{Decrease: int(dv - dw), Vertices: []swap.Vertex{v, w}})
			if len(gm.cycles) >= gm.opts.MaxNumberOfCycles {
				return true, nil
			}
		}
	}

	return len(gm.cycles) > 0, nil
}

// AttemptToClose evaluates, for each open path, the additional decrease the
// closing move (last vertex back to first) would contribute. Paths whose
// closed total decrease is positive become candidates and are kept as-is
// (closing is conceptual: CandidateManager treats the stored vertex slice
// as the cycle to enact). The first time any candidate appears, every other
// path is dropped (mixing partial and candidate paths across growth rounds
// would compare paths of different lengths unfairly); until then, paths
// that fail to close are kept as partials for further growth.
//
// Reports whether at least one candidate now exists.
func (gm *GrowthManager) AttemptToClose(m swap.VertexMapping, dist oracle.Distances) (bool, error) {
	type scored struct {
		cycle  Cycle
		closed int
	}

	results := make([]scored, len(gm.cycles))
	anyCandidate := false
	for i, c := range gm.cycles {
		first, last := c.Vertices[0], c.Vertices[len(c.Vertices)-1]
		tLast := targetOf(m, last)
		dLast, err := dist.Distance(last, tLast)
		if err != nil {
			return false, err
		}
		dFirst, err := dist.Distance(first, tLast)
		if err != nil {
			return false, err
		}
		total := c.Decrease + int(dLast) - int(dFirst)
		results[i] = scored{cycle: c, closed: total}
		if total > 0 {
			anyCandidate = true
		}
	}

	kept := gm.cycles[:0]
	for _, r := range results {
		switch {
		case r.closed > 0:
			kept = append(kept, Cycle{Decrease: r.closed, Vertices: r.cycle.Vertices})
		case !anyCandidate:
			kept = append(kept, r.cycle)
		}
	}
	gm.cycles = kept

	return anyCandidate, nil
}

// AttemptToGrow extends every stored path by one vertex in every possible
// direction (every not-already-visited neighbour of its last vertex),
// keeping a grown copy only if its decrease stays above the configured
// floor. The original (ungrown) path is always dropped. Reports whether
// growth should stop (the pool emptied, or the size cap was hit).
func (gm *GrowthManager) AttemptToGrow(m swap.VertexMapping, dist oracle.Distances, neigh oracle.Neighbours) (bool, error) {
	grown := make([]Cycle, 0, len(gm.cycles))

	for _, c := range gm.cycles {
		last := c.Vertices[len(c.Vertices)-1]
		inPath := make(map[swap.Vertex]bool, len(c.Vertices))
		for _, v := range c.Vertices {
			inPath[v] = true
		}

		tLast := targetOf(m, last)
		dLast, err := dist.Distance(last, tLast)
		if err != nil {
			return false, err
		}

		prevMoves := c.NumMoves()
		for _, w := range neigh.Neighbours(last) {
			if inPath[w] {
				continue
			}
			dW, err := dist.Distance(w, tLast)
			if err != nil {
				return false, err
			}
			newDecrease := c.Decrease + int(dLast) - int(dW)
			newVertices := make([]swap.Vertex, len(c.Vertices)+1)
			copy(newVertices, c.Vertices)
			newVertices[len(c.Vertices)] = w
			numMoves := len(newVertices) - 1

			threshold := maxInt(prevMoves, gm.opts.MinDecreaseForPartialPath,
				ceilDiv(numMoves*gm.opts.MinPowerPercentageForPartialPath, 100))
			if newDecrease < threshold {
				continue
			}

			grown = append(grown, Cycle{Decrease: newDecrease, Vertices: newVertices})
			if len(grown) >= gm.opts.MaxNumberOfCycles {
				gm.cycles = grown

				return true, nil
			}
		}
	}

	gm.cycles = grown
	if len(gm.cycles) == 0 {
		return true, nil
	}
	if gm.cycles[0].NumMoves()+1 >= gm.opts.MaxCycleSize {
		return true, nil
	}

	return false, nil
}
