// Package segment runs curvature-guided min-cut segmentation on a mesh.
//
// A Pipeline owns one Topology and the fields derived from it. Curvature is
// computed once per topology; the energy field once per (topology,
// fraction, kind). Picking new terminals only rebuilds the flow graph, which
// is fresh for every request.
//
// For each Segment call:
//   - Stage 1: validate the terminals.
//   - Stage 2: fetch or rebuild curvature and energy.
//   - Stage 3: build a flow graph with one edge per half-edge u→v, capacity
//     energy.Capacity(cost[u], cost[v]).
//   - Stage 4: solve the minimum cut; the source side is the region.
//   - Stage 5: absorb islands, assign the next region colour.
//
// A Pipeline is not safe for concurrent use; callers serialize requests.
// The Topology itself is immutable and may be shared freely.
package segment

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/meshseg"
	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/energy"
	"github.com/katalvlaran/meshseg/flow"
	"github.com/katalvlaran/meshseg/mesh"
	"github.com/katalvlaran/meshseg/palette"
	"github.com/katalvlaran/meshseg/window"
)

// Result is the outcome of one segmentation request.
type Result struct {
	// Source lists, ascending, the vertices of the segmented region.
	Source []int

	// MaxFlow is the value of the minimum cut.
	MaxFlow int64

	// Absorbed counts vertices added by island absorption.
	Absorbed int

	// Region is the index of this cut in the pipeline's colour sequence;
	// Color is palette.Cycle(Region).
	Region int
	Color  palette.RGB

	// Energy is a copy of the cost field the cut was computed on.
	Energy energy.Field

	// Window is the densest curvature window behind Energy.
	Window window.Window
}

// cacheKey identifies the inputs of a derived energy field.
type cacheKey struct {
	version  uint64
	fraction float64
	kind     curvature.Kind
}

// Pipeline segments one mesh.
type Pipeline struct {
	topo  *mesh.Topology
	opts  Options
	costs energy.Options

	// curvature cache, keyed by topology version
	samplesVersion uint64
	samples        []curvature.Sample

	// energy cache
	key        cacheKey
	field      energy.Field
	win        window.Window
	normalized []float64
	valid      bool

	nextRegion int
}

// New returns a Pipeline over t. Nothing is computed until first use.
//
// Errors:
//   - ErrNilTopology if t is nil.
//   - ErrOptionViolation for an invalid Option.
func New(t *mesh.Topology, opts ...Option) (*Pipeline, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	capOpts, err := energy.Resolve(energy.WithScale(o.CapacityScale), energy.WithInfinite(o.InfiniteCost))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	return &Pipeline{topo: t, opts: o, costs: capOpts}, nil
}

// Topology returns the mesh being segmented.
func (p *Pipeline) Topology() *mesh.Topology { return p.topo }

// Fraction returns the current densest-window share.
func (p *Pipeline) Fraction() float64 { return p.opts.Fraction }

// SetFraction changes the densest-window share and drops the energy cache.
// Curvature is kept.
func (p *Pipeline) SetFraction(f float64) error {
	if !validFraction(f) {
		return fmt.Errorf("%w: fraction must be in (0,1] (%v)", ErrOptionViolation, f)
	}
	p.opts.Fraction = f
	p.valid = false
	return nil
}

// SetTopology replaces the mesh and drops every cache. The colour counter
// keeps running.
func (p *Pipeline) SetTopology(t *mesh.Topology) error {
	if t == nil {
		return ErrNilTopology
	}
	p.topo = t
	p.samples = nil
	p.valid = false
	return nil
}

// ResetColors restarts the region colour sequence.
func (p *Pipeline) ResetColors() { p.nextRegion = 0 }

// Curvature returns the per-vertex curvature samples, computing them on
// first use after a topology change. The slice must not be modified.
func (p *Pipeline) Curvature() ([]curvature.Sample, error) {
	if p.samples != nil && p.samplesVersion == p.topo.Version() {
		return p.samples, nil
	}
	sw := meshseg.StartStopwatch("curvature")
	p.samples = curvature.ComputeAll(p.topo)
	p.samplesVersion = p.topo.Version()

	s := curvature.Summarize(curvature.Select(p.samples, p.opts.Kind))
	sw.Report(p.opts.Logger,
		slog.Int("vertices", p.topo.Len()),
		slog.Int("undefined", s.Undefined),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("mean", s.Mean))
	return p.samples, nil
}

// Energy returns the cost field for the current topology, fraction and
// kind, rebuilding it when any of them changed. The slice must not be
// modified.
func (p *Pipeline) Energy() (energy.Field, error) {
	key := cacheKey{version: p.topo.Version(), fraction: p.opts.Fraction, kind: p.opts.Kind}
	if p.valid && p.key == key {
		return p.field, nil
	}
	samples, err := p.Curvature()
	if err != nil {
		return nil, err
	}

	sw := meshseg.StartStopwatch("energy")
	field, win, err := energy.Map(curvature.Select(samples, p.opts.Kind), p.opts.Fraction,
		energy.WithInfinite(p.opts.InfiniteCost))
	if err != nil {
		return nil, fmt.Errorf("segment: Energy: %w", err)
	}
	p.field, p.win, p.key, p.valid = field, win, key, true
	p.normalized = energy.Normalize(field)
	sw.Report(p.opts.Logger,
		slog.String("kind", p.opts.Kind.String()),
		slog.Float64("fraction", p.opts.Fraction),
		slog.Float64("lower", win.Lower),
		slog.Float64("upper", win.Upper))
	return p.field, nil
}

// Normalized returns the energy field remapped to [0,1], ready for
// palette.FromNormalized. The slice must not be modified.
func (p *Pipeline) Normalized() ([]float64, error) {
	if _, err := p.Energy(); err != nil {
		return nil, err
	}
	return p.normalized, nil
}

// Graph builds the flow network of the current energy field.
func (p *Pipeline) Graph() (*flow.Graph, error) {
	field, err := p.Energy()
	if err != nil {
		return nil, err
	}
	g := flow.NewGraph(p.topo.Len())
	for _, e := range p.topo.HalfEdges() {
		if err := g.AddEdge(e.From, e.To, p.costs.Capacity(field[e.From], field[e.To])); err != nil {
			return nil, fmt.Errorf("segment: Graph: %w", err)
		}
	}
	return g, nil
}

// Segment cuts the mesh between source and sink and returns the region
// containing source.
//
// Errors:
//   - ErrTerminalOutOfRange if either terminal is not a vertex.
//   - ErrSameTerminal if source == sink.
//   - Wrapped energy and window errors when the field cannot be built.
//
// The same topology, terminals and options always yield the same
// Result.Source.
func (p *Pipeline) Segment(source, sink int) (*Result, error) {
	n := p.topo.Len()
	for _, v := range [...]int{source, sink} {
		if !p.topo.Contains(v) {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTerminalOutOfRange, v, n)
		}
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSameTerminal, source)
	}

	g, err := p.Graph()
	if err != nil {
		return nil, err
	}

	sw := meshseg.StartStopwatch("mincut")
	cut, err := flow.MinCut(g, source, sink,
		flow.WithAlgorithm(p.opts.Algorithm),
		flow.WithLogger(p.opts.Logger))
	if err != nil {
		return nil, fmt.Errorf("segment: Segment: %w", err)
	}

	in := cut.Side(n)
	absorbed := Absorb(p.topo, in, p.opts.Islands, sink)
	region := make([]int, 0, len(cut.Source)+absorbed)
	for v, ok := range in {
		if ok {
			region = append(region, v)
		}
	}

	res := &Result{
		Source:   region,
		MaxFlow:  cut.MaxFlow,
		Absorbed: absorbed,
		Region:   p.nextRegion,
		Color:    palette.Cycle(p.nextRegion),
		Energy:   append(energy.Field(nil), p.field...),
		Window:   p.win,
	}
	p.nextRegion++

	sw.Report(p.opts.Logger,
		slog.String("algorithm", p.opts.Algorithm.String()),
		slog.Int("source", source),
		slog.Int("sink", sink),
		slog.Int64("flow", cut.MaxFlow),
		slog.Int("region", len(region)),
		slog.Int("absorbed", absorbed),
		slog.Int("cut_edges", len(cut.Edges)))
	return res, nil
}
