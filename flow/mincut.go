package flow

// Cut is a minimum s–t cut of a Graph.
type Cut struct {
	// Source lists, ascending, the vertices on the source side.
	Source []int

	// MaxFlow is the flow value, equal to the total capacity of Edges.
	MaxFlow int64

	// Edges are the original edges leaving the source side.
	Edges []Edge
}

// MinCut runs the configured max-flow algorithm (Edmonds–Karp by default)
// and derives the minimum cut from the final residual network: the source
// side is everything still reachable from source over positive residual
// arcs.
//
// Errors are those of the selected algorithm.
//
// Complexity: that of the algorithm, plus O(V + E) for the cut.
func MinCut(g *Graph, source, sink int, opts ...Option) (Cut, error) {
	o, err := resolve(opts)
	if err != nil {
		return Cut{}, err
	}

	solve := EdmondsKarp
	switch o.Algorithm {
	case AlgoDinic:
		solve = Dinic
	case AlgoFordFulkerson:
		solve = FordFulkerson
	}
	maxFlow, residual, err := solve(g, source, sink, opts...)
	if err != nil {
		return Cut{}, err
	}

	side := residual.Reachable(source)
	in := make([]bool, g.Order())
	for _, v := range side {
		in[v] = true
	}
	var edges []Edge
	for _, e := range g.Edges() {
		if in[e.From] && !in[e.To] {
			edges = append(edges, e)
		}
	}

	return Cut{Source: side, MaxFlow: maxFlow, Edges: edges}, nil
}

// Side returns a membership mask of length n for the cut's source side.
func (c Cut) Side(n int) []bool {
	in := make([]bool, n)
	for _, v := range c.Source {
		if v >= 0 && v < n {
			in[v] = true
		}
	}
	return in
}
