package mesh

import "errors"

// Sentinel errors for topology construction. Callers match them with errors.Is;
// constructors attach context with %w.
var (
	// ErrEmptyMesh indicates a topology without vertices.
	ErrEmptyMesh = errors.New("mesh: no vertices")

	// ErrLengthMismatch indicates that positions, normals and rings disagree in length.
	ErrLengthMismatch = errors.New("mesh: per-vertex arrays differ in length")

	// ErrIndexOutOfRange indicates a ring or triangle index outside [0, N).
	ErrIndexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrSelfLoop indicates a vertex listed in its own 1-ring.
	ErrSelfLoop = errors.New("mesh: vertex is its own neighbour")

	// ErrDegenerateTriangle indicates a triangle that repeats a vertex index.
	ErrDegenerateTriangle = errors.New("mesh: triangle repeats a vertex")
)
