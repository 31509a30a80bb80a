package flow

import "fmt"

// Graph is a directed capacity network over vertices [0, n).
//
// Parallel edges aggregate into one capacity and self-loops are ignored, so
// every ordered pair carries at most one Edge. Capacities are validated on
// insertion; the solvers never re-check them.
type Graph struct {
	out [][]Edge
	m   int
}

// NewGraph returns an empty network with n vertices.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{out: make([][]Edge, n)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.out) }

// Size returns the number of distinct directed edges.
func (g *Graph) Size() int { return g.m }

// AddEdge adds capacity c to the edge u→v.
//
// Errors:
//   - ErrVertexNotFound if u or v is outside [0, Order()).
//   - EdgeError if c is negative.
//
// Complexity: O(deg(u)).
func (g *Graph) AddEdge(u, v int, c int64) error {
	n := len(g.out)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d→%d in graph of %d", ErrVertexNotFound, u, v, n)
	}
	if c < 0 {
		return EdgeError{From: u, To: v, Cap: c}
	}
	if u == v {
		return nil
	}
	for i := range g.out[u] {
		if g.out[u][i].To == v {
			g.out[u][i].Capacity += c
			return nil
		}
	}
	g.out[u] = append(g.out[u], Edge{From: u, To: v, Capacity: c})
	g.m++
	return nil
}

// Capacity returns the aggregated capacity of u→v, 0 if absent.
func (g *Graph) Capacity(u, v int) int64 {
	if u < 0 || u >= len(g.out) {
		return 0
	}
	for _, e := range g.out[u] {
		if e.To == v {
			return e.Capacity
		}
	}
	return 0
}

// Edges returns every edge ordered by source vertex, then insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.m)
	for _, es := range g.out {
		out = append(out, es...)
	}
	return out
}
