package graphadapter

// bfsPath walks g breadth-first from `from`, the way package bfs's walker
// does (a FIFO queue plus a parent map, one BFS layer at a time), stopping
// as soon as `to` is first discovered as a neighbour. It returns the path from `from` to `to`
// inclusive, or ok=false if `to` is unreachable.
func bfsPath(g *Graph, from, to string) (path []string, ok bool) {
	if from == to {
		return []string{from}, true
	}

	visited := map[string]bool{from: true}
	parent := map[string]string{}
	queue := []string{from}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(id) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = id
			if nbr == to {
				return reconstructPath(parent, from, to), true
			}
			queue = append(queue, nbr)
		}
	}

	return nil, false
}

// reconstructPath walks parent links from `to` back to `from` and reverses
// the result into a from-to-to order.
func reconstructPath(parent map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
