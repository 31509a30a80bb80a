// SPDX-License-Identifier: MIT
// Package: meshseg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in
//     order into a shared soup, places the vertices and derives the topology.
//   - Factories are declared in impl_*.go and return Constructor closures.
//   - Determinism: same options, seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/mesh"
)

// soup is the vertex and triangle accumulator shared by constructors.
// Indices returned by vertex are global, so constructors compose into
// disjoint components of one mesh.
type soup struct {
	positions []r3.Vec
	triangles [][3]int
}

// vertex appends p and returns its index.
func (s *soup) vertex(p r3.Vec) int {
	s.positions = append(s.positions, p)
	return len(s.positions) - 1
}

// tri appends the triangle a→b→c.
func (s *soup) tri(a, b, c int) {
	s.triangles = append(s.triangles, [3]int{a, b, c})
}

// quad appends the quad a→b→c→d as the triangles (a,b,c) and (a,c,d).
func (s *soup) quad(a, b, c, d int) {
	s.tri(a, b, c)
	s.tri(a, c, d)
}

// Constructor appends one mesh component to the soup using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and triangles in a stable, documented order.
//   - Wind triangles consistently (outward for closed solids).
type Constructor func(s *soup, cfg builderConfig) error

// BuildMesh resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting topology.
//
// Steps:
//  1. Resolve cfg; jitter without an RNG fails with ErrNeedRandSource.
//  2. Run every constructor; a nil constructor fails with ErrConstructFailed.
//  3. Place each vertex (jitter, scale, offset).
//  4. Derive rings and normals with mesh.FromTriangles.
//
// Any error is wrapped with the context "BuildMesh: %w".
//
// Complexity: Σ cost of constructors + O(T log d) for the topology.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Topology, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, builderErrorf(MethodBuildMesh, "jitter %v: %w", cfg.jitter, ErrNeedRandSource)
	}

	var s soup
	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(MethodBuildMesh, "nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&s, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
	}
	if len(s.positions) == 0 {
		return nil, builderErrorf(MethodBuildMesh, "no vertices: %w", ErrConstructFailed)
	}

	for i, p := range s.positions {
		s.positions[i] = cfg.place(p)
	}

	topo, err := mesh.FromTriangles(s.positions, s.triangles)
	if err != nil {
		return nil, builderErrorf(MethodBuildMesh, "%w: %w", ErrConstructFailed, err)
	}

	return topo, nil
}

// Build is BuildMesh for a single constructor.
func Build(con Constructor, bopts ...BuilderOption) (*mesh.Topology, error) {
	return BuildMesh(bopts, con)
}
