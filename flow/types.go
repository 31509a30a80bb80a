package flow

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/meshseg"
)

var (
	// ErrSourceNotFound is returned when the source index is not a vertex.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink index is not a vertex.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameTerminal is returned when source and sink coincide.
	ErrSameTerminal = errors.New("flow: source and sink are the same vertex")

	// ErrVertexNotFound is returned by AddEdge for an endpoint outside the graph.
	ErrVertexNotFound = errors.New("flow: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Edge is a directed edge of a Graph with its aggregated capacity.
type Edge struct {
	From, To int
	Capacity int64
}

// Algorithm selects the max-flow routine used by MinCut.
type Algorithm int

const (
	// AlgoEdmondsKarp augments along BFS shortest paths.
	AlgoEdmondsKarp Algorithm = iota

	// AlgoDinic pushes blocking flows on level graphs.
	AlgoDinic

	// AlgoFordFulkerson augments along DFS paths.
	AlgoFordFulkerson
)

// String returns the configuration token of a.
func (a Algorithm) String() string {
	switch a {
	case AlgoEdmondsKarp:
		return "edmonds-karp"
	case AlgoDinic:
		return "dinic"
	case AlgoFordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration token back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{AlgoEdmondsKarp, AlgoDinic, AlgoFordFulkerson} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, s)
}

// Options configures all max-flow algorithms.
//   - Algorithm: routine used by MinCut (default Edmonds–Karp).
//   - Verbose: if true, logs each augmentation at Debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
//   - Logger: destination of verbose output (default meshseg.Logger()).
type Options struct {
	Algorithm            Algorithm
	Verbose              bool
	LevelRebuildInterval int
	Logger               *slog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Edmonds–Karp, quiet, no forced level rebuilds, and
// the process logger.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgoEdmondsKarp,
		Logger:    meshseg.Logger(),
	}
}

// WithAlgorithm selects the routine used by MinCut.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < AlgoEdmondsKarp || a > AlgoFordFulkerson {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithVerbose logs every augmentation.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithLevelRebuildInterval makes Dinic rebuild its level graph every n
// augmentations. n == 0 disables it; n < 0 is invalid.
func WithLevelRebuildInterval(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: LevelRebuildInterval cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.LevelRebuildInterval = n
	}
}

// WithLogger sets the verbose output destination. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// checkTerminals validates source and sink against a graph of n vertices.
func checkTerminals(n, source, sink int) error {
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceNotFound, source, n)
	}
	if sink < 0 || sink >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSinkNotFound, sink, n)
	}
	if source == sink {
		return fmt.Errorf("%w: %d", ErrSameTerminal, source)
	}
	return nil
}
