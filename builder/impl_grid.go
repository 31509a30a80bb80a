// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// impl_grid.go - implementation of Plane(cols, rows) and Fold(cols, rows, angle).
//
// Canonical model:
//   • A sheet of cols×rows vertices with unit spacing, emitted in row-major
//     order (v asc, then u asc); local index = v*cols + u.
//   • Each cell (u,v) emits two triangles (a,b,c) and (a,c,d) with
//     a=(u,v), b=(u+1,v), c=(u+1,v+1), d=(u,v+1), so the flat sheet faces +Z.
//
// Complexity:
//   • Time: O(cols*rows) vertices and triangles.
//   • Space: O(1) extra.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane returns a Constructor that builds a flat cols×rows grid in the z=0
// plane with vertex (u,v) at (u, v, 0).
//
// Contract:
//   • cols ≥ MinGridDim and rows ≥ MinGridDim (else ErrTooFewVertices).
func Plane(cols, rows int) Constructor {
	return func(s *soup, _ builderConfig) error {
		if err := validateMin(MethodPlane, cols, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodPlane, rows, MinGridDim); err != nil {
			return err
		}
		sheet(s, cols, rows, func(u, v int) r3.Vec {
			return r3.Vec{X: float64(u), Y: float64(v)}
		})

		return nil
	}
}

// Fold returns a Constructor that builds a cols×rows sheet bent along the
// crease column k = (cols−1)/2, parallel to the Y axis.
//
// The part u ≤ k lies flat at x = u−k ≤ 0, z = 0. The part u > k is rotated
// about the crease by angle radians towards +Z: at distance d = u−k it sits at
// (d·cos(angle), v, d·sin(angle)). angle 0 is a flat plane; π/2 is an L
// shaped valley.
//
// Contract:
//   • cols ≥ MinFoldCols, rows ≥ MinGridDim (else ErrTooFewVertices).
//   • 0 ≤ angle < π (else ErrInvalidAngle).
func Fold(cols, rows int, angle float64) Constructor {
	return func(s *soup, _ builderConfig) error {
		if err := validateMin(MethodFold, cols, MinFoldCols); err != nil {
			return err
		}
		if err := validateMin(MethodFold, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateAngle(MethodFold, angle); err != nil {
			return err
		}

		crease := (cols - 1) / 2
		cos, sin := math.Cos(angle), math.Sin(angle)
		sheet(s, cols, rows, func(u, v int) r3.Vec {
			d := float64(u - crease)
			if d <= 0 {
				return r3.Vec{X: d, Y: float64(v)}
			}
			return r3.Vec{X: d * cos, Y: float64(v), Z: d * sin}
		})

		return nil
	}
}

// sheet emits a cols×rows grid whose vertex (u,v) is placed by at.
func sheet(s *soup, cols, rows int, at func(u, v int) r3.Vec) {
	base := len(s.positions)
	for v := 0; v < rows; v++ {
		for u := 0; u < cols; u++ {
			s.vertex(at(u, v))
		}
	}

	id := func(u, v int) int { return base + v*cols + u }
	for v := 0; v+1 < rows; v++ {
		for u := 0; u+1 < cols; u++ {
			s.quad(id(u, v), id(u+1, v), id(u+1, v+1), id(u, v+1))
		}
	}
}
