// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through builderErrorf.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (cols, rows, n,
// subdivisions) is outside its allowed range.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidAngle indicates a fold angle outside [0, π).
var ErrInvalidAngle = errors.New("builder: angle out of range")

// ErrNeedRandSource indicates that jitter was requested but no *rand.Rand is
// configured (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a soup that could not be
// turned into a topology.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by ParseShape for an unrecognised name.
var ErrUnknownShape = errors.New("builder: unknown shape")

// builderErrorf prefixes a formatted message with the method name. A %w verb
// in format keeps the wrapped sentinel visible to errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
