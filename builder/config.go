// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil           (no randomness unless seeded)
//   • jitter = DefaultJitter (0: exact positions)
//   • scale  = DefaultScale  (1)
//   • offset = origin

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by BuildMesh and constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for jitter; nil means "no randomness".
	rng *rand.Rand

	// Placement applied after all constructors ran: p' = (p + noise)·scale + offset.
	jitter float64 // ≥0, standard deviation per coordinate
	scale  float64 // >0
	offset r3.Vec
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		jitter: DefaultJitter,
		scale:  DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a generated position into its final location. Noise is drawn
// from cfg.rng in call order, so a fixed seed reproduces the mesh exactly.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	if c.jitter > 0 {
		p = r3.Add(p, r3.Vec{
			X: c.rng.NormFloat64() * c.jitter,
			Y: c.rng.NormFloat64() * c.jitter,
			Z: c.rng.NormFloat64() * c.jitter,
		})
	}

	return r3.Add(r3.Scale(c.scale, p), c.offset)
}
