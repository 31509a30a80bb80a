// Package meshseg segments triangulated surface meshes into regions by
// combining per-vertex discrete curvature with a graph min-cut.
//
// Given a mesh and two terminal vertices, meshseg produces a partition of the
// vertex set that follows high-curvature "fold" boundaries between the
// terminals.
//
// Under the hood, everything is organized in small subpackages:
//
//	mesh/       — immutable Topology: positions, normals, ordered 1-rings, version stamp
//	geometry/   — triangle area, clamped angles, cotangents, mixed Voronoi area
//	curvature/  — discrete Gaussian / mean / principal curvature per vertex
//	window/     — densest-window (minimum variance) percentile thresholding
//	energy/     — curvature → cut cost field → integer edge capacities
//	bfs/        — the single breadth-first search routine (target or reachability mode)
//	flow/       — index-based flow graph, Edmonds–Karp, Dinic, Ford–Fulkerson, MinCut
//	segment/    — the Pipeline: cached energy, cut, island absorption, region colours
//	palette/    — HSV colours, normalized-value colour ramp, region colours
//	builder/    — procedural test meshes (plane, fold, box, octahedron, icosphere)
//	meshio/     — minimal STL / OBJ import with vertex welding
//	render/     — offline preview renderer (PNG, WebP, TGA)
//	config/     — JSON / YAML configuration with CLI overrides
//	cmd/meshseg — command-line front end: load or build, segment, report, render
//
// Quick ASCII picture of what a cut looks like on a folded sheet:
//
//	  source ●───●───●
//	         │ ╲ │ ╲ │
//	         ●───●───●   ← fold (high curvature, cheap to cut)
//	         │ ╲ │ ╲ │
//	         ●───●───● sink
//
// By default meshseg produces no log output; see SetLogger.
//
//	go get github.com/katalvlaran/meshseg
package meshseg
