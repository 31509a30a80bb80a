// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: parameter too small".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrTooFewVertices)
	}

	return nil
}

// validateRange ensures that min ≤ got ≤ max.
//
// Complexity: O(1) time and space.
func validateRange(method string, got, min, max int) error {
	if got < min || got > max {
		return builderErrorf(method, "parameter must be in [%d,%d], got %d: %w", min, max, got, ErrTooFewVertices)
	}

	return nil
}

// validateAngle enforces angle ∈ [0, π). A fold of π would lay the two
// halves on top of each other.
//
// Complexity: O(1) time and space.
func validateAngle(method string, angle float64) error {
	if math.IsNaN(angle) || angle < 0 || angle >= math.Pi {
		return builderErrorf(method, "angle must be in [0,π), got %v: %w", angle, ErrInvalidAngle)
	}

	return nil
}
