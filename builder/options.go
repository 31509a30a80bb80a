// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildMesh themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes BuildMesh by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jitter.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces every vertex by Gaussian noise of standard deviation
// sigma per coordinate, before scaling. Requires WithSeed or WithRand when
// sigma > 0. Panics if sigma is negative or NaN.
func WithJitter(sigma float64) BuilderOption {
	if !(sigma >= 0) {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithScale multiplies every position by s. Panics if s is not positive and
// finite.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every position by d after scaling.
func WithOffset(d r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.offset = d
	}
}
