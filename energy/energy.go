// Package energy turns per-vertex curvature into a clamped cost field and the
// integer edge capacities of the segmentation flow graph.
//
// A curvature value c is first mapped to a quality q = exp(−c), so flat and
// concave areas score high and sharp convex features score low. The densest
// window [lo, hi] of the curvature population fixes two thresholds, compared
// on c so that exp never decides them:
//
//	c < lo     →  Infinite           (flatter than the bulk: saturate)
//	c > hi     →  0                  (sharper than the bulk: free)
//	otherwise  →  min(q, Infinite)
//
// Every cost therefore lies in [0, Infinite]. The window runs over all
// values, Undefined ones included; Undefined curvature (degenerate vertices)
// has quality 0 and is always free.
//
// Edge capacities are inversely proportional to the cost difference between
// the endpoints: edges across a steep cost change are cheap to cut, edges
// inside a uniform area are expensive.
package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/geometry"
	"github.com/katalvlaran/meshseg/window"
)

// Defaults used by Map and Capacity.
const (
	DefaultInfinite    = 1e6
	DefaultScale       = 1000
	DefaultEpsilon     = 1e-9
	DefaultMaxCapacity = int64(1e9)
)

// ErrOptionViolation is returned when an Option carries an invalid value.
var ErrOptionViolation = errors.New("energy: invalid option supplied")

// Field is the non-negative per-vertex cost, indexed by vertex.
type Field []float64

// Options configures Map and Capacity.
type Options struct {
	// Infinite is the cost assigned to vertices flatter than the window.
	Infinite float64

	// Scale is the numerator of the capacity formula.
	Scale float64

	// Epsilon is the cost difference at or below which an edge gets
	// MaxCapacity.
	Epsilon float64

	// MaxCapacity bounds every capacity from above.
	MaxCapacity int64

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Infinite 1e6, Scale 1000, Epsilon 1e-9 and
// MaxCapacity 1e9.
func DefaultOptions() Options {
	return Options{
		Infinite:    DefaultInfinite,
		Scale:       DefaultScale,
		Epsilon:     DefaultEpsilon,
		MaxCapacity: DefaultMaxCapacity,
	}
}

// WithInfinite sets the saturation cost. It must be positive.
func WithInfinite(v float64) Option {
	return func(o *Options) {
		if !(v > 0) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: Infinite must be positive and finite (%v)", ErrOptionViolation, v)
			return
		}
		o.Infinite = v
	}
}

// WithScale sets the capacity numerator. It must be positive.
func WithScale(v float64) Option {
	return func(o *Options) {
		if !(v > 0) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: Scale must be positive and finite (%v)", ErrOptionViolation, v)
			return
		}
		o.Scale = v
	}
}

// WithEpsilon sets the equal-cost tolerance. It must not be negative.
func WithEpsilon(v float64) Option {
	return func(o *Options) {
		if !(v >= 0) {
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%v)", ErrOptionViolation, v)
			return
		}
		o.Epsilon = v
	}
}

// WithMaxCapacity sets the capacity ceiling. It must be at least 1.
func WithMaxCapacity(v int64) Option {
	return func(o *Options) {
		if v < 1 {
			o.err = fmt.Errorf("%w: MaxCapacity must be ≥ 1 (%d)", ErrOptionViolation, v)
			return
		}
		o.MaxCapacity = v
	}
}

// Resolve applies opts over the defaults and reports the first invalid one.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}

// Quality returns exp(−c). The Undefined sentinel has quality 0.
func Quality(c float64) float64 {
	if c == curvature.Undefined {
		return 0
	}
	return math.Exp(-c)
}

// Map computes the cost field of curvatures using the densest window that
// holds the given fraction of the values.
//
// Errors:
//   - window.ErrInvalidArgument (wrapped) for a bad fraction.
//   - ErrOptionViolation for invalid options.
//
// Complexity: O(N log N).
func Map(curvatures []float64, fraction float64, opts ...Option) (Field, window.Window, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, window.Window{}, err
	}
	win, err := window.Densest(curvatures, fraction)
	if err != nil {
		return nil, window.Window{}, fmt.Errorf("energy: Map: %w", err)
	}

	field := make(Field, len(curvatures))
	for i, c := range curvatures {
		switch {
		case c == curvature.Undefined:
			field[i] = 0
		case c < win.Lower:
			field[i] = o.Infinite
		case c > win.Upper:
			field[i] = 0
		default:
			field[i] = math.Min(Quality(c), o.Infinite)
		}
	}
	return field, win, nil
}

// Capacity returns the flow capacity of an edge whose endpoints cost costU
// and costV, using the default options: round(Scale/|costU−costV|), or
// MaxCapacity when the difference is within Epsilon, clamped to
// [1, MaxCapacity]. A NaN difference, as between two equal infinities,
// counts as equal costs; an infinite difference gets capacity 1.
func Capacity(costU, costV float64) int64 {
	return DefaultOptions().Capacity(costU, costV)
}

// Capacity is the package-level Capacity with o's parameters.
func (o Options) Capacity(costU, costV float64) int64 {
	d := math.Abs(costU - costV)
	if d <= o.Epsilon || math.IsNaN(d) {
		return o.MaxCapacity
	}
	c := math.Round(o.Scale / d)
	if c < 1 {
		return 1
	}
	if c >= float64(o.MaxCapacity) {
		return o.MaxCapacity
	}
	return int64(c)
}

// Normalize remaps field linearly to [0,1]. A constant field maps to zeros.
// Bounds come from the finite values; +Inf maps to 1, −Inf and NaN to 0.
func Normalize(field Field) []float64 {
	out := make([]float64, len(field))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range field {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	for i, v := range field {
		switch {
		case math.IsInf(v, 1):
			out[i] = 1
		case math.IsInf(v, 0) || math.IsNaN(v):
			out[i] = 0
		default:
			out[i] = geometry.Remap(v, lo, hi, 0, 1)
		}
	}
	return out
}
