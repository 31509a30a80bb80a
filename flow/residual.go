package flow

import (
	"sort"

	"github.com/katalvlaran/meshseg/bfs"
)

// arc is one direction of a residual arc pair. Arcs 2k and 2k+1 are mates.
type arc struct {
	to  int
	cap int64 // original capacity in this direction
	res int64 // remaining residual capacity
}

// Residual is the residual network of one solve. It is allocated per call
// and never aliases the Graph capacities.
//
// Each unordered vertex pair with an edge in either direction is stored once
// as a pair of mated arcs, so the residual holds O(V + E) entries. Pushing f
// along u→v lowers res(u→v) and raises res(v→u) by f.
type Residual struct {
	arcs []arc
	adj  [][]int
}

// newResidual builds the residual network of g before any flow is pushed.
func newResidual(g *Graph) *Residual {
	r := &Residual{
		arcs: make([]arc, 0, 2*g.m),
		adj:  make([][]int, len(g.out)),
	}
	for u, es := range g.out {
		for _, e := range es {
			if i, ok := r.arcTo(u, e.To); ok {
				r.arcs[i].cap += e.Capacity
				r.arcs[i].res += e.Capacity
				continue
			}
			r.adj[u] = append(r.adj[u], len(r.arcs))
			r.arcs = append(r.arcs, arc{to: e.To, cap: e.Capacity, res: e.Capacity})
			r.adj[e.To] = append(r.adj[e.To], len(r.arcs))
			r.arcs = append(r.arcs, arc{to: u})
		}
	}
	return r
}

// arcTo returns the index of the arc u→v.
func (r *Residual) arcTo(u, v int) (int, bool) {
	for _, i := range r.adj[u] {
		if r.arcs[i].to == v {
			return i, true
		}
	}
	return 0, false
}

// Order returns the number of vertices.
func (r *Residual) Order() int { return len(r.adj) }

// Neighbors calls fn for every v with positive residual capacity u→v.
func (r *Residual) Neighbors(u int, fn func(v int) bool) {
	for _, i := range r.adj[u] {
		if r.arcs[i].res > 0 && !fn(r.arcs[i].to) {
			return
		}
	}
}

// Capacity returns the remaining residual capacity u→v.
func (r *Residual) Capacity(u, v int) int64 {
	if i, ok := r.arcTo(u, v); ok {
		return r.arcs[i].res
	}
	return 0
}

// Flow returns the net flow carried from u to v, 0 if it runs v→u or the
// pair has no edge.
func (r *Residual) Flow(u, v int) int64 {
	i, ok := r.arcTo(u, v)
	if !ok {
		return 0
	}
	if f := r.arcs[i].cap - r.arcs[i].res; f > 0 {
		return f
	}
	return 0
}

// push moves f units along arc i.
func (r *Residual) push(i int, f int64) {
	r.arcs[i].res -= f
	r.arcs[i^1].res += f
}

// Reachable returns, sorted ascending, every vertex reachable from source
// over positive residual arcs. After a maximum flow this is the source side
// of a minimum cut. An invalid source yields nil.
func (r *Residual) Reachable(source int) []int {
	res, err := bfs.Search(r, source)
	if err != nil {
		return nil
	}
	out := append([]int(nil), res.Order...)
	sort.Ints(out)
	return out
}
