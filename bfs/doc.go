// Package bfs provides breadth-first search over index-addressed graphs,
// returning visit order, parent links and hop depths.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a source vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Parent: predecessor in the BFS tree, Unvisited (-1) or Self (-2) for the source
//   - Depth:  hop distance from the source, -1 for unreached vertices
//   - One routine serves two modes:
//   - augmenting-path mode: WithTarget(t) stops as soon as t is discovered
//   - reachability mode:    without a target the whole reachable set is explored
//   - WithFilter restricts the arcs followed (e.g. positive residual capacity).
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Shortest augmenting paths for Edmonds–Karp max-flow.
//   - The source side of a minimum cut is the set reachable in the residual.
//   - Connected regions of a mesh (island absorption, enclosed components).
//
// Determinism
//
//	Neighbours are enqueued in the order the Graph reports them, so the visit
//	sequence is reproducible for a given graph.
//
// Complexity (V = Order(), E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(g, 0)
//	path, ok := res.PathTo(7)
//
//	res, err := bfs.Search(g, s,
//	    bfs.WithTarget(t),
//	    bfs.WithFilter(func(u, v int) bool { return cap(u, v) > 0 }),
//	)
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartOutOfRange   if the source is not in [0, Order()).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped errors returned from OnVisit.
package bfs
