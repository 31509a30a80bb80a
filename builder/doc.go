// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// doc.go - package overview.

// Package builder generates procedural triangle meshes for fixtures, examples
// and the command-line demo mode.
//
// Every generator is a Constructor: a closure that appends vertices and
// consistently wound triangles to a shared soup. BuildMesh runs constructors
// in order, applies the resolved placement options (jitter, scale, offset) and
// derives a *mesh.Topology through mesh.FromTriangles.
//
// Generators:
//
//   - Plane(cols, rows):        flat open grid in the z=0 plane, normal +Z.
//   - Fold(cols, rows, angle):  plane bent along a straight crease.
//   - Box(n):                   closed cube with n×n quads per face, welded.
//   - Octahedron():             unit octahedron.
//   - Icosahedron():            unit icosahedron.
//   - Icosphere(k):             icosahedron subdivided k times onto the unit sphere.
//
// All closed solids are wound outward; open sheets face +Z before bending.
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter is below its documented minimum.
//   - ErrInvalidAngle:   a fold angle outside [0, π).
//   - ErrNeedRandSource: jitter requested without WithSeed/WithRand.
//   - ErrConstructFailed: nil constructor or topology derivation failure.
//   - ErrUnknownShape:   ParseShape received an unknown name.
//
// Option constructors (WithX) panic on meaningless values; generators
// themselves never panic.
package builder
