package mesh

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg"
)

// FromTriangles derives a Topology from positions and a consistently wound
// triangle list.
//
// Implementation:
//   - Stage 1: For every triangle (a,b,c) record, around each corner, the
//     directed fan step it contributes (a: b→c, b: c→a, c: a→b).
//   - Stage 2: Walk the steps around each vertex to obtain the ordered ring.
//     A closed fan is started at its smallest neighbour index; an open fan
//     (border vertex) is started at the neighbour that has no predecessor.
//   - Stage 3: Vertex normals are the area-weighted sums of incident face
//     normals, normalized to unit length.
//
// Non-manifold vertices (several fans, or two triangles claiming the same
// step) are reported at Warn level; their extra fans are appended to the ring
// in discovery order.
//
// Complexity: O(T log d) time, O(N + T) space.
func FromTriangles(positions []r3.Vec, triangles [][3]int) (*Topology, error) {
	n := len(positions)
	if n == 0 {
		return nil, ErrEmptyMesh
	}

	steps := make([]map[int]int, n)
	normals := make([]r3.Vec, n)
	log := meshseg.Logger()
	conflicts := 0

	for i, tri := range triangles {
		if err := checkTriangle(tri, n); err != nil {
			return nil, fmt.Errorf("mesh: FromTriangles: triangle %d: %w", i, err)
		}
		a, b, c := tri[0], tri[1], tri[2]
		// Unnormalized face normal: its length is twice the triangle area.
		fn := r3.Cross(r3.Sub(positions[b], positions[a]), r3.Sub(positions[c], positions[a]))
		for k := 0; k < 3; k++ {
			v, from, to := tri[k], tri[(k+1)%3], tri[(k+2)%3]
			if steps[v] == nil {
				steps[v] = make(map[int]int, 6)
			}
			if _, dup := steps[v][from]; dup {
				conflicts++
				continue
			}
			steps[v][from] = to
			normals[v] = r3.Add(normals[v], fn)
		}
	}
	if conflicts > 0 {
		log.Warn("mesh: non-manifold fan steps ignored", slog.Int("count", conflicts))
	}

	rings := make([][]int, n)
	for v := 0; v < n; v++ {
		rings[v] = walkFan(steps[v])
		if l := r3.Norm(normals[v]); l > 0 {
			normals[v] = r3.Scale(1/l, normals[v])
		}
	}

	return New(positions, normals, rings, triangles)
}

// walkFan orders the neighbours described by the fan steps from→to.
func walkFan(step map[int]int) []int {
	if len(step) == 0 {
		return nil
	}
	hasPred := make(map[int]bool, len(step))
	keys := make([]int, 0, len(step))
	for from, to := range step {
		hasPred[to] = true
		keys = append(keys, from)
	}
	sort.Ints(keys)

	// Open fans start at a neighbour nobody steps into; closed fans at the
	// smallest index. Both choices are deterministic.
	starts := make([]int, 0, 1)
	for _, k := range keys {
		if !hasPred[k] {
			starts = append(starts, k)
		}
	}
	starts = append(starts, keys...)

	seen := make(map[int]bool, len(step)+1)
	ring := make([]int, 0, len(step)+1)
	for _, s := range starts {
		if seen[s] {
			continue
		}
		cur := s
		for !seen[cur] {
			seen[cur] = true
			ring = append(ring, cur)
			next, ok := step[cur]
			if !ok {
				break
			}
			cur = next
		}
	}
	return ring
}
