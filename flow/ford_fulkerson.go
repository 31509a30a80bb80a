package flow

import (
	"log/slog"
	"math"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns the same values and errors as EdmondsKarp.
//
// Steps:
//  1. Validate terminals and options; build the residual network.
//  2. Repeat until no augmenting path:
//     a. Iterative DFS for any path s→t with positive residual capacity.
//     b. If none found, stop.
//     c. Augment along the path by its bottleneck.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow.
//	Memory: O(V + E).
//
// Suitable for small integral networks; for stronger guarantees use
// Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(g *Graph, source, sink int, opts ...Option) (maxFlow int64, residual *Residual, err error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	if err = checkTerminals(g.Order(), source, sink); err != nil {
		return 0, nil, err
	}

	residual = newResidual(g)
	n := residual.Order()
	for {
		// via[v] = arc used to reach v, -1 if unreached
		via := make([]int, n)
		for i := range via {
			via[i] = -1
		}
		visited := make([]bool, n)
		visited[source] = true
		stack := []int{source}

		for len(stack) > 0 && !visited[sink] {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range residual.adj[u] {
				e := residual.arcs[a]
				if e.res <= 0 || visited[e.to] {
					continue
				}
				visited[e.to] = true
				via[e.to] = a
				if e.to == sink {
					break
				}
				stack = append(stack, e.to)
			}
		}
		if !visited[sink] {
			break
		}

		// The mate of the arc into v points back to its tail.
		bottle := int64(math.MaxInt64)
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			bottle = min(bottle, residual.arcs[via[v]].res)
		}
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			residual.push(via[v], bottle)
		}
		maxFlow += bottle

		if o.Verbose {
			o.Logger.Debug("flow: augmenting path",
				slog.String("algorithm", AlgoFordFulkerson.String()),
				slog.Int64("flow", bottle),
				slog.Int64("total", maxFlow))
		}
	}

	return maxFlow, residual, nil
}
