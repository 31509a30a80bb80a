// Package mesh defines Topology, the immutable triangle-mesh value consumed by
// every computation in meshseg.
//
// A Topology holds, per vertex, a position, a unit normal and the ordered cyclic
// 1-ring of neighbour indices. The ring order must follow a consistent winding:
// reversing it flips the sign of mean curvature and corrupts the obtuse-triangle
// area split. The vertex index is the stable identity used by every downstream
// structure (curvature samples, energy fields, flow graphs, cut results).
//
// Topologies are never mutated after construction. Each one carries a Version
// stamp, unique within the process, so derived data can be cached against it.
package mesh

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// versionCounter hands out Topology version stamps.
var versionCounter atomic.Uint64

// Topology is an immutable triangle mesh with ordered 1-rings.
type Topology struct {
	positions []r3.Vec
	normals   []r3.Vec
	rings     [][]int
	triangles [][3]int
	boundary  []bool
	version   uint64
}

// HalfEdge is a directed mesh edge From→To, one per entry of ring(From).
type HalfEdge struct {
	From, To int
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// Center returns the midpoint of the box.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size returns the edge lengths of the box.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// New validates and wraps externally supplied topology data. The slices are
// copied, so later changes by the caller do not leak into the Topology.
//
// Errors:
//   - ErrEmptyMesh if positions is empty.
//   - ErrLengthMismatch if normals or rings differ in length from positions.
//   - ErrIndexOutOfRange for any ring or triangle index outside [0, N).
//   - ErrSelfLoop if a vertex appears in its own ring.
//   - ErrDegenerateTriangle if a triangle repeats a vertex.
//
// Complexity: O(N + Σ|ring| + T).
func New(positions, normals []r3.Vec, rings [][]int, triangles [][3]int) (*Topology, error) {
	n := len(positions)
	if n == 0 {
		return nil, ErrEmptyMesh
	}
	if len(normals) != n || len(rings) != n {
		return nil, fmt.Errorf("mesh: New: %d positions, %d normals, %d rings: %w",
			n, len(normals), len(rings), ErrLengthMismatch)
	}

	t := &Topology{
		positions: append([]r3.Vec(nil), positions...),
		normals:   append([]r3.Vec(nil), normals...),
		rings:     make([][]int, n),
		triangles: append([][3]int(nil), triangles...),
		boundary:  make([]bool, n),
		version:   versionCounter.Add(1),
	}
	for v, ring := range rings {
		for _, u := range ring {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("mesh: New: ring(%d) lists %d: %w", v, u, ErrIndexOutOfRange)
			}
			if u == v {
				return nil, fmt.Errorf("mesh: New: ring(%d): %w", v, ErrSelfLoop)
			}
		}
		t.rings[v] = append([]int(nil), ring...)
	}
	for i, tri := range triangles {
		if err := checkTriangle(tri, n); err != nil {
			return nil, fmt.Errorf("mesh: New: triangle %d: %w", i, err)
		}
	}
	t.markBoundary()

	return t, nil
}

// checkTriangle validates one index triple against a vertex count n.
func checkTriangle(tri [3]int, n int) error {
	for _, v := range tri {
		if v < 0 || v >= n {
			return fmt.Errorf("index %d: %w", v, ErrIndexOutOfRange)
		}
	}
	if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
		return ErrDegenerateTriangle
	}
	return nil
}

// markBoundary flags vertices whose fan is open: some consecutive ring pair
// (including the wrap-around pair) is not a triangle of the mesh. Without a
// triangle list nothing is flagged.
func (t *Topology) markBoundary() {
	if len(t.triangles) == 0 {
		return
	}
	type key struct{ a, b, c int }
	faces := make(map[key]struct{}, len(t.triangles)*3)
	for _, tri := range t.triangles {
		// Store every rotation so lookups do not depend on the starting vertex.
		faces[key{tri[0], tri[1], tri[2]}] = struct{}{}
		faces[key{tri[1], tri[2], tri[0]}] = struct{}{}
		faces[key{tri[2], tri[0], tri[1]}] = struct{}{}
	}
	for v, ring := range t.rings {
		k := len(ring)
		for i := 0; i < k; i++ {
			if _, ok := faces[key{v, ring[i], ring[(i+1)%k]}]; !ok {
				t.boundary[v] = true
				break
			}
		}
	}
}

// Len returns the number of vertices.
func (t *Topology) Len() int { return len(t.positions) }

// Version returns the process-unique stamp of this topology.
func (t *Topology) Version() uint64 { return t.version }

// Position returns the position of vertex v.
func (t *Topology) Position(v int) r3.Vec { return t.positions[v] }

// Normal returns the unit normal of vertex v.
func (t *Topology) Normal(v int) r3.Vec { return t.normals[v] }

// Degree returns the size of the 1-ring of v.
func (t *Topology) Degree(v int) int { return len(t.rings[v]) }

// Boundary reports whether v lies on an open fan (mesh border or hole).
func (t *Topology) Boundary(v int) bool { return t.boundary[v] }

// Ring returns a copy of the ordered 1-ring of v.
func (t *Topology) Ring(v int) []int {
	return append([]int(nil), t.rings[v]...)
}

// RingPositions returns the positions of the ordered 1-ring of v.
func (t *Topology) RingPositions(v int) []r3.Vec {
	out := make([]r3.Vec, len(t.rings[v]))
	for i, u := range t.rings[v] {
		out[i] = t.positions[u]
	}
	return out
}

// Order returns the number of vertices. Together with Neighbors it lets a
// Topology be searched by package bfs.
func (t *Topology) Order() int { return len(t.positions) }

// Neighbors calls fn for every neighbour of v in ring order without
// allocating, stopping early when fn returns false.
func (t *Topology) Neighbors(v int, fn func(u int) bool) {
	for _, u := range t.rings[v] {
		if !fn(u) {
			return
		}
	}
}

// Positions returns a copy of all vertex positions.
func (t *Topology) Positions() []r3.Vec {
	return append([]r3.Vec(nil), t.positions...)
}

// Triangles returns a copy of the triangle index list.
func (t *Topology) Triangles() [][3]int {
	return append([][3]int(nil), t.triangles...)
}

// HalfEdges returns every directed edge u→v with v in ring(u), ordered by u and
// then by ring position.
func (t *Topology) HalfEdges() []HalfEdge {
	var total int
	for _, ring := range t.rings {
		total += len(ring)
	}
	out := make([]HalfEdge, 0, total)
	for u, ring := range t.rings {
		for _, v := range ring {
			out = append(out, HalfEdge{From: u, To: v})
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all positions.
func (t *Topology) Bounds() Box {
	b := Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, p := range t.positions {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Centered returns a new Topology translated so the bounding-box centre sits at
// the origin. Normals, rings and triangles are copied unchanged; the result has
// a fresh Version.
func (t *Topology) Centered() *Topology {
	shift := r3.Scale(-1, t.Bounds().Center())
	pos := make([]r3.Vec, len(t.positions))
	for i, p := range t.positions {
		pos[i] = r3.Add(p, shift)
	}
	out := &Topology{
		positions: pos,
		normals:   append([]r3.Vec(nil), t.normals...),
		rings:     make([][]int, len(t.rings)),
		triangles: append([][3]int(nil), t.triangles...),
		boundary:  append([]bool(nil), t.boundary...),
		version:   versionCounter.Add(1),
	}
	for i, ring := range t.rings {
		out.rings[i] = append([]int(nil), ring...)
	}
	return out
}

// Nearest returns the index of the vertex closest to p. It stands in for
// interactive ray picking when terminals are given as coordinates.
func (t *Topology) Nearest(p r3.Vec) int {
	best, bestD := 0, math.Inf(1)
	for i, q := range t.positions {
		if d := r3.Norm2(r3.Sub(p, q)); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Contains reports whether v is a valid vertex index.
func (t *Topology) Contains(v int) bool {
	return v >= 0 && v < len(t.positions)
}
