// Package builder defines shared constants used by the mesh generators,
// keeping defaults and validation consistent across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMesh is the canonical name of the BuildMesh orchestrator.
	MethodBuildMesh = "BuildMesh"
	// MethodPlane is the canonical name for the Plane constructor.
	MethodPlane = "Plane"
	// MethodFold is the canonical name for the Fold constructor.
	MethodFold = "Fold"
	// MethodBox is the canonical name for the Box constructor.
	MethodBox = "Box"
	// MethodOctahedron is the canonical name for the Octahedron constructor.
	MethodOctahedron = "Octahedron"
	// MethodIcosahedron is the canonical name for the Icosahedron constructor.
	MethodIcosahedron = "Icosahedron"
	// MethodIcosphere is the canonical name for the Icosphere constructor.
	MethodIcosphere = "Icosphere"
	// MethodShape is the canonical name for the Shape dispatcher.
	MethodShape = "Shape"
)

//-----------------------------------------------------------------------------
// Size Bounds
//-----------------------------------------------------------------------------

// MinGridDim is the smallest number of vertex columns or rows of a Plane or
// Fold. Two are needed to form a single quad.
const MinGridDim = 2

// MinFoldCols is the smallest column count of a Fold: one column on each side
// of the crease plus the crease itself.
const MinFoldCols = 3

// MinBoxDivisions is the smallest number of quads along a cube edge.
const MinBoxDivisions = 1

// MaxSubdivisions bounds Icosphere refinement. Level k has 10·4^k+2 vertices,
// so level 7 already holds 163 842.
const MaxSubdivisions = 7

//-----------------------------------------------------------------------------
// Placement Defaults
//-----------------------------------------------------------------------------

// DefaultScale is the uniform scale applied to generated positions.
const DefaultScale = 1.0

// DefaultJitter is the standard deviation of the positional noise.
const DefaultJitter = 0.0
