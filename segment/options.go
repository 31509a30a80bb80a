package segment

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/meshseg"
	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/energy"
	"github.com/katalvlaran/meshseg/flow"
)

// DefaultFraction is the share of curvature samples the densest window
// holds unless WithFraction says otherwise.
const DefaultFraction = 0.9

var (
	// ErrTerminalOutOfRange is returned when a terminal is not a vertex.
	ErrTerminalOutOfRange = errors.New("segment: terminal vertex out of range")

	// ErrSameTerminal is returned when source and sink coincide.
	ErrSameTerminal = errors.New("segment: source and sink are the same vertex")

	// ErrNilTopology is returned by New and SetTopology for a nil mesh.
	ErrNilTopology = errors.New("segment: topology is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("segment: invalid option supplied")
)

// IslandMode selects how the cut's source side is closed over enclosed
// vertices.
type IslandMode int

const (
	// IslandsNone keeps the raw cut.
	IslandsNone IslandMode = iota

	// IslandsSinglePass adds, once, every vertex whose whole ring was on
	// the source side when the pass started. The sink is never absorbed.
	IslandsSinglePass

	// IslandsFixedPoint repeats the single pass until nothing changes.
	IslandsFixedPoint

	// IslandsEnclosed adds every connected component of the remaining
	// vertices that does not contain the sink.
	IslandsEnclosed
)

// String returns the configuration token of m.
func (m IslandMode) String() string {
	switch m {
	case IslandsNone:
		return "none"
	case IslandsSinglePass:
		return "single"
	case IslandsFixedPoint:
		return "fixed-point"
	case IslandsEnclosed:
		return "enclosed"
	default:
		return fmt.Sprintf("IslandMode(%d)", int(m))
	}
}

// ParseIslandMode maps a configuration token back to an IslandMode.
func ParseIslandMode(s string) (IslandMode, error) {
	for _, m := range []IslandMode{IslandsNone, IslandsSinglePass, IslandsFixedPoint, IslandsEnclosed} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown island mode %q", ErrOptionViolation, s)
}

// Options configures a Pipeline.
type Options struct {
	// Fraction is the densest-window share in (0,1].
	Fraction float64

	// Kind selects the curvature scalar fed to the energy.
	Kind curvature.Kind

	// Islands selects the absorption pass run after each cut.
	Islands IslandMode

	// Algorithm selects the max-flow routine.
	Algorithm flow.Algorithm

	// CapacityScale is the numerator of the edge capacity formula.
	CapacityScale float64

	// InfiniteCost is the saturation cost of flat vertices.
	InfiniteCost float64

	// Logger receives lifecycle and timing records.
	Logger *slog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns fraction 0.9, Gaussian curvature, single-pass
// absorption, Edmonds–Karp, the energy package defaults and the process
// logger.
func DefaultOptions() Options {
	return Options{
		Fraction:      DefaultFraction,
		Kind:          curvature.KindGaussian,
		Islands:       IslandsSinglePass,
		Algorithm:     flow.AlgoEdmondsKarp,
		CapacityScale: energy.DefaultScale,
		InfiniteCost:  energy.DefaultInfinite,
		Logger:        meshseg.Logger(),
	}
}

// validFraction reports whether f is in (0,1].
func validFraction(f float64) bool {
	return f > 0 && f <= 1
}

// WithFraction sets the densest-window share. It must be in (0,1].
func WithFraction(f float64) Option {
	return func(o *Options) {
		if !validFraction(f) {
			o.err = fmt.Errorf("%w: fraction must be in (0,1] (%v)", ErrOptionViolation, f)
			return
		}
		o.Fraction = f
	}
}

// WithKind selects the curvature scalar.
func WithKind(k curvature.Kind) Option {
	return func(o *Options) {
		if k < curvature.KindGaussian || k > curvature.KindMaxAbsPrincipal {
			o.err = fmt.Errorf("%w: unknown curvature kind %d", ErrOptionViolation, int(k))
			return
		}
		o.Kind = k
	}
}

// WithIslands selects the absorption pass.
func WithIslands(m IslandMode) Option {
	return func(o *Options) {
		if m < IslandsNone || m > IslandsEnclosed {
			o.err = fmt.Errorf("%w: unknown island mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Islands = m
	}
}

// WithAlgorithm selects the max-flow routine.
func WithAlgorithm(a flow.Algorithm) Option {
	return func(o *Options) {
		if a < flow.AlgoEdmondsKarp || a > flow.AlgoFordFulkerson {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithCapacityScale sets the capacity numerator. It must be positive.
func WithCapacityScale(s float64) Option {
	return func(o *Options) {
		if !(s > 0) || math.IsInf(s, 0) {
			o.err = fmt.Errorf("%w: capacity scale must be positive (%v)", ErrOptionViolation, s)
			return
		}
		o.CapacityScale = s
	}
}

// WithInfiniteCost sets the saturation cost. It must be positive.
func WithInfiniteCost(c float64) Option {
	return func(o *Options) {
		if !(c > 0) || math.IsInf(c, 0) {
			o.err = fmt.Errorf("%w: infinite cost must be positive (%v)", ErrOptionViolation, c)
			return
		}
		o.InfiniteCost = c
	}
}

// WithLogger sets the pipeline logger. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
