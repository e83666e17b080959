package pathfinder

import (
	"math/rand"

	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// edgeKey is the canonical (unordered) key for per-edge usage counts.
type edgeKey struct{ lo, hi swap.Vertex }

func keyOf(a, b swap.Vertex) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// PathFinder is RiverFlow: it picks one shortest path among possibly many,
// biased toward edges it (or a caller, via RegisterEdge) has used before.
//
// Not safe for concurrent use; the solver owns one instance per problem.
type PathFinder struct {
	dist   oracle.Distances
	neigh  oracle.Neighbours
	counts map[edgeKey]int
	seed   int64
	rng    *rand.Rand
}

// New returns a PathFinder over dist/neigh, seeded deterministically with seed.
func New(dist oracle.Distances, neigh oracle.Neighbours, seed int64) *PathFinder {
	pf := &PathFinder{dist: dist, neigh: neigh, seed: seed}
	pf.Reset()

	return pf
}

// Reset zeroes every edge-usage counter and reseeds the RNG from the original
// seed, so a fresh problem run replays byte-for-byte.
func (pf *PathFinder) Reset() {
	pf.counts = make(map[edgeKey]int)
	pf.rng = rand.New(rand.NewSource(pf.seed))
}

// RegisterEdge increments the usage counter for (u, v) without it having
// passed through Find — used by the Cycles engine to tell RiverFlow about
// edges it emitted swaps on directly.
func (pf *PathFinder) RegisterEdge(u, v swap.Vertex) {
	pf.counts[keyOf(u, v)]++
}

// Find returns one shortest path from u to v (inclusive of both endpoints),
// preferring previously-used edges at each step. Errors: whatever dist.Distance
// returns (e.g. oracle.ErrDisconnectedGraph).
func (pf *PathFinder) Find(u, v swap.Vertex) ([]swap.Vertex, error) {
	if u == v {
		return []swap.Vertex{u}, nil
	}

	total, err := pf.dist.Distance(u, v)
	if err != nil {
		return nil, err
	}

	path := make([]swap.Vertex, 1, total+1)
	path[0] = u
	cur := u
	for steps := uint64(0); steps < total; steps++ {
		remaining := total - steps
		next, err := pf.pickNext(cur, v, remaining)
		if err != nil {
			return nil, err
		}
		path = append(path, next)
		cur = next
	}

	for i := 0; i+1 < len(path); i++ {
		pf.counts[keyOf(path[i], path[i+1])]++
	}
	pf.dist.RegisterShortestPath(path)

	return path, nil
}

// pickNext chooses the next vertex on a shortest path from cur to v, given
// `remaining` is the distance still owed. Among cur's neighbours lying on
// some shortest path (dist(n, v) == remaining-1), it keeps those with the
// highest edge-usage count so far and samples uniformly among ties.
func (pf *PathFinder) pickNext(cur, v swap.Vertex, remaining uint64) (swap.Vertex, error) {
	candidates := make([]swap.Vertex, 0, 4)
	bestCount := -1
	for _, n := range pf.neigh.Neighbours(cur) {
		dn, err := pf.dist.Distance(n, v)
		if err != nil {
			return 0, err
		}
		if dn != remaining-1 {
			continue
		}
		c := pf.counts[keyOf(cur, n)]
		switch {
		case c > bestCount:
			bestCount = c
			candidates = candidates[:0]
			candidates = append(candidates, n)
		case c == bestCount:
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return 0, oracle.ErrDisconnectedGraph
	}

	return candidates[pf.rng.Intn(len(candidates))], nil
}
