package oracle

import "github.com/katalvlaran/tokswap/swap"

// pairKey is the canonical (unordered) cache key for a vertex pair.
type pairKey struct{ lo, hi swap.Vertex }

func keyOf(a, b swap.Vertex) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// longPathThreshold and longPathWindow bound how much of a long registered path gets fully
// cross-cached; beyond it we only cache the prefix, suffix and middle
// windows, trading a little cache-hit rate for avoiding an O(n^2) pass over
// paths that can be arbitrarily long.
const longPathThreshold = 11
const longPathWindow = 5

// CachingDistances implements Distances on top of a ShortestPathSource,
// memoising every distance it computes (or is told) on first query.
//
// Not safe for concurrent use; the solver owns one instance per problem.
type CachingDistances struct {
	src   ShortestPathSource
	cache map[pairKey]uint64
}

// NewCachingDistances wraps src with a distance cache.
func NewCachingDistances(src ShortestPathSource) *CachingDistances {
	return &CachingDistances{src: src, cache: make(map[pairKey]uint64)}
}

// Distance implements Distances.
func (d *CachingDistances) Distance(a, b swap.Vertex) (uint64, error) {
	if a == b {
		return 0, nil
	}
	key := keyOf(a, b)
	if v, ok := d.cache[key]; ok {
		return v, nil
	}

	path, err := d.src.ShortestPath(a, b)
	if err != nil {
		return 0, err
	}
	d.RegisterShortestPath(path)
	d.cache[key] = uint64(len(path) - 1)

	return d.cache[key], nil
}

// RegisterEdge implements Distances.
func (d *CachingDistances) RegisterEdge(u, v swap.Vertex) {
	if u == v {
		return
	}
	d.cache[keyOf(u, v)] = 1
}

// RegisterShortestPath implements Distances. It does not re-verify that path
// is actually shortest (callers that violate the contract corrupt their own
// cache, which is their problem, not the oracle's).
func (d *CachingDistances) RegisterShortestPath(path []swap.Vertex) {
	n := len(path)
	if n <= 1 {
		return
	}
	if n < longPathThreshold {
		d.cacheWindow(path, 0, n)

		return
	}

	d.cacheWindow(path, 0, longPathWindow)
	d.cacheWindow(path, n-longPathWindow, n)
	mid := n / 2
	lo := mid - longPathWindow/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + longPathWindow
	if hi > n {
		hi = n
	}
	d.cacheWindow(path, lo, hi)
}

// cacheWindow caches every pairwise distance among path[lo:hi], using the
// fact that sub-paths of a shortest path are themselves shortest: the
// distance between path[i] and path[j] is simply |i-j|.
func (d *CachingDistances) cacheWindow(path []swap.Vertex, lo, hi int) {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			dist := uint64(j - i)
			key := keyOf(path[i], path[j])
			if cur, ok := d.cache[key]; !ok || dist < cur {
				d.cache[key] = dist
			}
		}
	}
}

var _ Distances = (*CachingDistances)(nil)
