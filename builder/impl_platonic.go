// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// impl_platonic.go - Octahedron, Icosahedron and Icosphere constructors.
//
// Contract:
//   • Vertices are emitted in table order; faces in table order.
//   • All faces are wound outward.
//   • Icosphere(k) splits every triangle into four per level and projects the
//     edge midpoints onto the unit sphere. Midpoints are shared through an
//     edge map, so the sphere stays closed and manifold.
//
// Complexity:
//   • Octahedron/Icosahedron: O(1).
//   • Icosphere(k): O(20·4^k) triangles, O(10·4^k) vertices.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Octahedron returns a Constructor that builds the unit octahedron.
func Octahedron() Constructor {
	return solid(octahedronVertices, octahedronFaces)
}

// Icosahedron returns a Constructor that builds the icosahedron inscribed in
// the unit sphere.
func Icosahedron() Constructor {
	return solid(icosahedronVertices, icosahedronFaces)
}

// Icosphere returns a Constructor that builds the icosahedron refined
// subdivisions times onto the unit sphere. Level 0 is the icosahedron.
//
// Contract:
//   • 0 ≤ subdivisions ≤ MaxSubdivisions (else ErrTooFewVertices).
func Icosphere(subdivisions int) Constructor {
	return func(s *soup, _ builderConfig) error {
		if err := validateRange(MethodIcosphere, subdivisions, 0, MaxSubdivisions); err != nil {
			return err
		}

		positions := append([]r3.Vec(nil), icosahedronVertices...)
		faces := append([][3]int(nil), icosahedronFaces...)
		for level := 0; level < subdivisions; level++ {
			positions, faces = subdivide(positions, faces)
		}

		return solid(positions, faces)(s, builderConfig{})
	}
}

// solid copies a vertex/face table into the soup, offsetting the indices.
func solid(positions []r3.Vec, faces [][3]int) Constructor {
	return func(s *soup, _ builderConfig) error {
		base := len(s.positions)
		for _, p := range positions {
			s.vertex(p)
		}
		for _, f := range faces {
			s.tri(base+f[0], base+f[1], base+f[2])
		}

		return nil
	}
}

// subdivide performs one midpoint 1→4 split of every face, projecting the
// new midpoints onto the unit sphere.
//
//	     c                 c
//	    / \               / \
//	   /   \     →      ca---bc
//	  /     \           / \ / \
//	 a-------b         a---ab--b
func subdivide(positions []r3.Vec, faces [][3]int) ([]r3.Vec, [][3]int) {
	mid := make(map[[2]int]int, len(faces)*3/2)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if id, ok := mid[key]; ok {
			return id
		}
		positions = append(positions, r3.Unit(r3.Add(positions[a], positions[b])))
		id := len(positions) - 1
		mid[key] = id
		return id
	}

	out := make([][3]int, 0, len(faces)*4)
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		out = append(out,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}

	return positions, out
}
