// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// variants_platonic.go - canonical vertex and face tables for the solids.
//
// Design:
//   • Single source of truth for vertex positions and outward-wound faces.
//   • Tables are immutable; constructors copy them into the soup.
//   • Icosahedron vertices are normalized onto the unit sphere at init().

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// octahedronVertices are the unit octahedron corners ±X, ±Y, ±Z.
var octahedronVertices = []r3.Vec{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// octahedronFaces: four faces around +Z, then four around −Z.
var octahedronFaces = [][3]int{
	{4, 0, 2}, {4, 2, 1}, {4, 1, 3}, {4, 3, 0},
	{5, 2, 0}, {5, 1, 2}, {5, 3, 1}, {5, 0, 3},
}

// icosahedronVertices are the three golden rectangles (±1, ±φ, 0) cycled over
// the axes, scaled onto the unit sphere.
var icosahedronVertices []r3.Vec

// icosahedronFaces: five faces around vertex 0, their five neighbours, five
// faces around vertex 3, then the five closing the belt.
var icosahedronFaces = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func init() {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vec{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	icosahedronVertices = make([]r3.Vec, len(raw))
	for i, p := range raw {
		icosahedronVertices[i] = r3.Unit(p)
	}
}
