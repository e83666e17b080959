package graphadapter

// BuildUnweighted constructs an undirected Graph from a list of (from, to)
// vertex-ID edges and returns it together with its VertexIndex.
func BuildUnweighted(edges [][2]string) (*Graph, *VertexIndex, error) {
	g := NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, nil, err
		}
	}

	return g, NewVertexIndex(g), nil
}
