// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// variants.go - named shapes for configuration files and the CLI.

package builder

import (
	"fmt"
	"strings"
)

// ShapeName enumerates the generators reachable by name.
type ShapeName int

// Enum values (stable ordering).
const (
	ShapePlane ShapeName = iota
	ShapeFold
	ShapeBox
	ShapeOctahedron
	ShapeIcosahedron
	ShapeIcosphere
)

// shapeTokens maps each ShapeName to its canonical token.
var shapeTokens = map[ShapeName]string{
	ShapePlane:       "plane",
	ShapeFold:        "fold",
	ShapeBox:         "box",
	ShapeOctahedron:  "octahedron",
	ShapeIcosahedron: "icosahedron",
	ShapeIcosphere:   "icosphere",
}

// String returns the canonical lowercase token.
func (n ShapeName) String() string {
	if s, ok := shapeTokens[n]; ok {
		return s
	}
	return "unknown"
}

// ParseShape resolves a token (case-insensitive) to its ShapeName.
func ParseShape(s string) (ShapeName, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for n, tok := range shapeTokens {
		if tok == want {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", MethodShape, s, ErrUnknownShape)
}

// Shape returns the Constructor for name with a single resolution knob:
//
//	plane, fold   resolution×resolution vertices (fold bent by angle)
//	box           resolution quads per edge
//	icosphere     resolution subdivision levels
//	octahedron, icosahedron   resolution and angle ignored
//
// Parameter validation is left to the selected constructor.
func Shape(name ShapeName, resolution int, angle float64) (Constructor, error) {
	switch name {
	case ShapePlane:
		return Plane(resolution, resolution), nil
	case ShapeFold:
		return Fold(resolution, resolution, angle), nil
	case ShapeBox:
		return Box(resolution), nil
	case ShapeOctahedron:
		return Octahedron(), nil
	case ShapeIcosahedron:
		return Icosahedron(), nil
	case ShapeIcosphere:
		return Icosphere(resolution), nil
	default:
		return nil, fmt.Errorf("%s: %d: %w", MethodShape, int(name), ErrUnknownShape)
	}
}
