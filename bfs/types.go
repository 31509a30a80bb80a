package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the source index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Parent markers.
const (
	// Unvisited marks a vertex the search never reached.
	Unvisited = -1

	// Self marks the source vertex, which has no predecessor.
	Self = -2
)

// Graph is the read-only view BFS needs: a vertex count and an ordered
// neighbour enumeration.
type Graph interface {
	// Order returns the number of vertices; valid indices are [0, Order()).
	Order() int

	// Neighbors calls fn for every arc u→v. Returning false from fn stops
	// the enumeration of u early.
	Neighbors(u int, fn func(v int) bool)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Target, if ≥ 0, stops the search as soon as it is discovered.
	Target int

	// Filter can skip arcs by returning false. Called for each arc u→v.
	Filter func(u, v int) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(v, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no target, no depth limit, no
// filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Target:   -1,
		Filter:   func(_, _ int) bool { return true },
		MaxDepth: 0,
		OnVisit:  func(int, int) error { return nil },
	}
}

// WithTarget stops the search once t is discovered. The target is then
// Reached and has a path, but it is not visited. A negative t is invalid.
func WithTarget(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// WithFilter skips arcs u→v for which fn returns false.
func WithFilter(fn func(u, v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	Order  []int
	Parent []int
	Depth  []int
}

// Reached reports whether v was discovered.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Parent) && r.Parent[v] != Unvisited
}

// PathTo reconstructs the vertex path from the source to dest, inclusive.
// ok is false if dest was not reached.
func (r *Result) PathTo(dest int) (path []int, ok bool) {
	if !r.Reached(dest) {
		return nil, false
	}
	for cur := dest; cur != Self; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
