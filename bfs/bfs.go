package bfs

import (
	"fmt"
	"reflect"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	queue []int
	res   *Result
	found bool
}

// Search runs breadth-first search on g from source, applying any number of
// functional Options.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any wrapped OnVisit error.
// A Target outside the graph is simply never found.
func Search(g Graph, source int, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Parent: make([]int, n),
			Depth:  make([]int, n),
		},
	}
	for i := range w.res.Parent {
		w.res.Parent[i] = Unvisited
		w.res.Depth[i] = -1
	}

	w.enqueue(source, 0, Self)
	if source == o.Target {
		w.found = true
	}
	return w.res, w.loop()
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// enqueue marks v discovered at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Parent[v] = parent
	w.res.Depth[v] = d
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, target found, or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		u := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, w.res.Depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		w.expand(u)
	}
	return nil
}

// expand enqueues every undiscovered neighbour of u allowed by Filter and
// MaxDepth. It stops early once the target is discovered.
func (w *walker) expand(u int) {
	next := w.res.Depth[u] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.graph.Neighbors(u, func(v int) bool {
		if w.res.Parent[v] != Unvisited || !w.opts.Filter(u, v) {
			return true
		}
		w.enqueue(v, next, u)
		if v == w.opts.Target {
			w.found = true
			return false
		}
		return true
	})
}
