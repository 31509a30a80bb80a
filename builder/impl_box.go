// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// impl_box.go - implementation of Box(n).
//
// Canonical model:
//   • The cube [-1,1]³ with every face split into n×n quads.
//   • Vertices live on the integer lattice {0..n}³ of the cube surface and are
//     shared between faces through a lattice-point map, so the result is a
//     closed manifold with 6n²+2 vertices and 12n² triangles.
//   • Faces are emitted in the order +X, −X, +Y, −Y, +Z, −Z; each face walks
//     its (i,j) lattice in row-major order.
//
// Complexity:
//   • Time: O(n²) vertices and triangles.
//   • Space: O(n²) for the lattice map.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// boxFace describes one cube face on the lattice: the fixed axis and value,
// and the two in-face axes chosen so that U×V is the outward normal.
type boxFace struct {
	axis, u, v int
	high       bool
}

// boxFaces lists the faces in emission order.
var boxFaces = [6]boxFace{
	{axis: 0, u: 1, v: 2, high: true},  // +X: Y×Z = +X
	{axis: 0, u: 2, v: 1, high: false}, // −X: Z×Y = −X
	{axis: 1, u: 2, v: 0, high: true},  // +Y: Z×X = +Y
	{axis: 1, u: 0, v: 2, high: false}, // −Y: X×Z = −Y
	{axis: 2, u: 0, v: 1, high: true},  // +Z: X×Y = +Z
	{axis: 2, u: 1, v: 0, high: false}, // −Z: Y×X = −Z
}

// Box returns a Constructor that builds the closed cube [-1,1]³ with n×n
// quads per face, wound outward.
//
// Contract:
//   • n ≥ MinBoxDivisions (else ErrTooFewVertices).
func Box(n int) Constructor {
	return func(s *soup, _ builderConfig) error {
		if err := validateMin(MethodBox, n, MinBoxDivisions); err != nil {
			return err
		}

		index := make(map[[3]int]int, 6*n*n+2)
		at := func(f boxFace, i, j int) int {
			var p [3]int
			if f.high {
				p[f.axis] = n
			}
			p[f.u], p[f.v] = i, j
			if id, ok := index[p]; ok {
				return id
			}
			step := 2 / float64(n)
			id := s.vertex(r3.Vec{
				X: -1 + step*float64(p[0]),
				Y: -1 + step*float64(p[1]),
				Z: -1 + step*float64(p[2]),
			})
			index[p] = id
			return id
		}

		for _, f := range boxFaces {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					s.quad(at(f, i, j), at(f, i+1, j), at(f, i+1, j+1), at(f, i, j+1))
				}
			}
		}

		return nil
	}
}
