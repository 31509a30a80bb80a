package segment

import (
	"github.com/katalvlaran/meshseg/bfs"
	"github.com/katalvlaran/meshseg/mesh"
)

// Absorb grows the vertex set in (indexed by vertex, modified in place)
// according to mode and returns how many vertices were added.
//
//   - IslandsNone: nothing changes.
//   - IslandsSinglePass: a vertex joins iff its entire, non-empty ring was in
//     the set at the start of the pass.
//   - IslandsFixedPoint: the single pass is repeated until it adds nothing.
//   - IslandsEnclosed: every connected component of the complement that does
//     not contain sink joins. With sink < 0 only the largest component stays
//     outside.
//
// A valid sink is never absorbed.
//
// Complexity: O(V + E) per pass; the fixed point needs at most V passes.
func Absorb(t *mesh.Topology, in []bool, mode IslandMode, sink int) int {
	switch mode {
	case IslandsSinglePass:
		return absorbPass(t, in, sink)
	case IslandsFixedPoint:
		total := 0
		for {
			n := absorbPass(t, in, sink)
			if n == 0 {
				return total
			}
			total += n
		}
	case IslandsEnclosed:
		return absorbEnclosed(t, in, sink)
	default:
		return 0
	}
}

// absorbPass runs one snapshot pass.
func absorbPass(t *mesh.Topology, in []bool, sink int) int {
	var add []int
	for v := range in {
		if in[v] || v == sink || t.Degree(v) == 0 {
			continue
		}
		enclosed := true
		t.Neighbors(v, func(u int) bool {
			enclosed = in[u]
			return enclosed
		})
		if enclosed {
			add = append(add, v)
		}
	}
	for _, v := range add {
		in[v] = true
	}
	return len(add)
}

// absorbEnclosed labels the complement's connected components and adds all
// but the kept one.
func absorbEnclosed(t *mesh.Topology, in []bool, sink int) int {
	outside := func(_, v int) bool { return !in[v] }
	seen := make([]bool, len(in))
	var comps [][]int
	keep := -1
	for v := range in {
		if in[v] || seen[v] {
			continue
		}
		res, err := bfs.Search(t, v, bfs.WithFilter(outside))
		if err != nil {
			continue
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		if sink >= 0 && sink < len(in) && res.Reached(sink) {
			keep = len(comps)
		}
		comps = append(comps, res.Order)
	}
	if sink < 0 {
		for i, c := range comps {
			if keep < 0 || len(c) > len(comps[keep]) {
				keep = i
			}
		}
	}

	added := 0
	for i, c := range comps {
		if i == keep {
			continue
		}
		for _, u := range c {
			in[u] = true
		}
		added += len(c)
	}
	return added
}
