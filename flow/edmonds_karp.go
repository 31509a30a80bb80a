package flow

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/meshseg/bfs"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual network after the flow
//   - err: ErrSourceNotFound, ErrSinkNotFound, ErrSameTerminal or
//     ErrOptionViolation.
//
// Steps:
//  1. Validate terminals and options.
//  2. Build the residual network from g.
//  3. BFS from source over positive residual arcs, stopping at sink.
//  4. If sink is unreached, stop. Otherwise take the bottleneck along the
//     parent chain, lower every forward arc and raise its mate by it.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *Graph, source, sink int, opts ...Option) (maxFlow int64, residual *Residual, err error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	if err = checkTerminals(g.Order(), source, sink); err != nil {
		return 0, nil, err
	}

	residual = newResidual(g)
	for {
		res, err := bfs.Search(residual, source, bfs.WithTarget(sink))
		if err != nil {
			return maxFlow, nil, err
		}
		path, ok := res.PathTo(sink)
		if !ok {
			break
		}

		arcs := make([]int, len(path)-1)
		bottle := int64(math.MaxInt64)
		for i := range arcs {
			a, _ := residual.arcTo(path[i], path[i+1])
			arcs[i] = a
			bottle = min(bottle, residual.arcs[a].res)
		}
		for _, a := range arcs {
			residual.push(a, bottle)
		}
		maxFlow += bottle

		if o.Verbose {
			o.Logger.Debug("flow: augmenting path",
				slog.String("algorithm", AlgoEdmondsKarp.String()),
				slog.Any("path", path),
				slog.Int64("flow", bottle),
				slog.Int64("total", maxFlow))
		}
	}

	return maxFlow, residual, nil
}
