// Package flow implements maximum-flow and minimum-cut algorithms on
// index-addressed capacity networks.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp (default)
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//   - Time:   O(V · E²) in the worst case.
//   - Guarantees polynomial worst-case behavior.
//
//   - Dinic
//   - Method: level graph construction + blocking flow via DFS.
//   - Time:   O(E · √V) on unit-capacity networks.
//   - High practical performance on large meshes.
//
//   - Ford–Fulkerson
//   - Method: depth-first search for any augmenting path.
//   - Time:   O(E · F), where F is the total flow pushed.
//   - Use when simplicity and small capacities suffice.
//
// # Graph Support
//
// A Graph has vertices [0, n) and directed edges with int64 capacities.
// Parallel edges aggregate, self-loops are ignored and negative capacities
// are rejected by AddEdge with an EdgeError, so the solvers never see them.
//
// # Residual network
//
// Every solve allocates its own Residual. Each vertex pair joined by an edge
// in either direction is stored once as two mated arcs, so memory stays
// O(V + E) even on meshes with hundreds of thousands of vertices.
//
// # API
//
//	func EdmondsKarp(g *Graph, source, sink int, opts ...Option) (int64, *Residual, error)
//	func Dinic(g *Graph, source, sink int, opts ...Option) (int64, *Residual, error)
//	func FordFulkerson(g *Graph, source, sink int, opts ...Option) (int64, *Residual, error)
//	func MinCut(g *Graph, source, sink int, opts ...Option) (Cut, error)
//
// Use DefaultOptions() for production-safe defaults:
//
//	opts := flow.DefaultOptions()
//	// opts.Algorithm = flow.AlgoEdmondsKarp
//	// opts.Verbose = false
//	// opts.LevelRebuildInterval = 0
//
// # Errors
//
//	ErrSourceNotFound  - source index outside the graph.
//	ErrSinkNotFound    - sink index outside the graph.
//	ErrSameTerminal    - source == sink.
//	ErrVertexNotFound  - AddEdge endpoint outside the graph.
//	EdgeError          - AddEdge with a negative capacity.
//	ErrOptionViolation - invalid Option.
package flow
