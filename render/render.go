// Package render draws an offline preview of a segmented mesh.
//
// The renderer is a painter's-algorithm rasterizer: triangles are projected
// orthographically, sorted back to front by mean depth and filled one after
// the other with github.com/gogpu/gg. Each triangle is filled with the mean
// of its vertex colours, shaded by a headlight. The frame is drawn at a
// multiple of the requested size and downscaled with a Catmull-Rom filter,
// which hides the seams anti-aliasing leaves between adjacent triangles.
//
// The preview is a diagnostic aid, not a 3-D renderer: there is no depth
// buffer, so intersecting triangles may be drawn in the wrong order.
package render

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg"
	"github.com/katalvlaran/meshseg/mesh"
	"github.com/katalvlaran/meshseg/palette"
)

var (
	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("render: invalid option supplied")

	// ErrColorCount is returned when the colour slice does not match the
	// vertex count.
	ErrColorCount = errors.New("render: colour count mismatch")

	// ErrUnknownFormat is returned for an unsupported image extension.
	ErrUnknownFormat = errors.New("render: unknown image format")
)

// Defaults used by Render.
const (
	DefaultWidth       = 640
	DefaultHeight      = 480
	DefaultSupersample = 2
	DefaultMargin      = 0.05
	DefaultAzimuth     = math.Pi / 6
	DefaultElevation   = math.Pi / 7

	// ambient is the share of a face colour kept when it is seen edge-on.
	ambient = 0.35
)

// DefaultBackground and DefaultSurface are the colours used when none is
// given.
var (
	DefaultBackground = palette.RGB{R: 0.08, G: 0.08, B: 0.1}
	DefaultSurface    = palette.RGB{R: 0.7, G: 0.7, B: 0.7}
)

// Options configures Render.
type Options struct {
	Width, Height int

	// Supersample is the factor the frame is drawn at before downscaling.
	Supersample int

	// Azimuth rotates the mesh about +Z; Elevation raises the camera above
	// the XY plane. Both are in radians; π/2 elevation looks straight down.
	Azimuth, Elevation float64

	// Margin is the empty border, as a share of the frame.
	Margin float64

	Background palette.RGB

	Logger *slog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a 640×480 frame, 2× supersampling and a three
// quarter view.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Supersample: DefaultSupersample,
		Azimuth:     DefaultAzimuth,
		Elevation:   DefaultElevation,
		Margin:      DefaultMargin,
		Background:  DefaultBackground,
	}
}

// WithSize sets the output size in pixels. Both must be positive.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width < 1 || height < 1 {
			o.err = fmt.Errorf("%w: size %dx%d", ErrOptionViolation, width, height)
			return
		}
		o.Width, o.Height = width, height
	}
}

// WithSupersample sets the supersampling factor (1 disables it).
func WithSupersample(f int) Option {
	return func(o *Options) {
		if f < 1 {
			o.err = fmt.Errorf("%w: supersample %d", ErrOptionViolation, f)
			return
		}
		o.Supersample = f
	}
}

// WithView sets the camera azimuth and elevation in radians. Elevation must
// lie in [−π/2, π/2].
func WithView(azimuth, elevation float64) Option {
	return func(o *Options) {
		if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) || !(math.Abs(elevation) <= math.Pi/2) {
			o.err = fmt.Errorf("%w: view (%v, %v)", ErrOptionViolation, azimuth, elevation)
			return
		}
		o.Azimuth, o.Elevation = azimuth, elevation
	}
}

// WithMargin sets the border share, in [0, 0.5).
func WithMargin(m float64) Option {
	return func(o *Options) {
		if !(m >= 0 && m < 0.5) {
			o.err = fmt.Errorf("%w: margin %v", ErrOptionViolation, m)
			return
		}
		o.Margin = m
	}
}

// WithBackground sets the background colour.
func WithBackground(c palette.RGB) Option {
	return func(o *Options) { o.Background = c }
}

// WithLogger overrides the process logger for this call.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	if o.Logger == nil {
		o.Logger = meshseg.Logger()
	}
	return o, nil
}

// SetLogger forwards l to the gg rasterizer, so its diagnostics reach the
// same sink as meshseg's. Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// camera is an orthographic view basis: right and up span the screen, toward
// points at the viewer.
type camera struct {
	right, up, toward r3.Vec
}

func newCamera(azimuth, elevation float64) camera {
	sa, ca := math.Sin(azimuth), math.Cos(azimuth)
	se, ce := math.Sin(elevation), math.Cos(elevation)
	// World vectors rotated by −azimuth about Z, so the mesh turns by +azimuth.
	right := r3.Vec{X: ca, Y: -sa}
	forward := r3.Vec{X: sa, Y: ca}
	return camera{
		right:  right,
		up:     r3.Add(r3.Scale(se, forward), r3.Vec{Z: ce}),
		toward: r3.Add(r3.Scale(-ce, forward), r3.Vec{Z: se}),
	}
}

// face is one triangle queued for painting.
type face struct {
	tri   [3]int
	depth float64
}

// Render draws t with one colour per vertex. A nil colors slice paints every
// vertex DefaultSurface.
//
// Steps:
//  1. Project every vertex onto the camera plane and fit the bounds into the
//     frame minus the margin.
//  2. Sort triangles by mean depth, farthest first (stable for ties).
//  3. Fill each triangle with its mean vertex colour scaled by
//     ambient + (1−ambient)·|n·toward|.
//  4. Downscale the supersampled frame with Catmull-Rom.
//
// Complexity: O(T log T) plus the fill cost.
func Render(t *mesh.Topology, colors []palette.RGB, opts ...Option) (image.Image, error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}
	if colors != nil && len(colors) != t.Len() {
		return nil, fmt.Errorf("render: %d colours for %d vertices: %w", len(colors), t.Len(), ErrColorCount)
	}
	w := meshseg.StartStopwatch("render")

	cam := newCamera(o.Azimuth, o.Elevation)
	ss := o.Supersample
	fw, fh := o.Width*ss, o.Height*ss

	// 1) Project and fit.
	n := t.Len()
	sx, sy := make([]float64, n), make([]float64, n)
	depth := make([]float64, n)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for v := 0; v < n; v++ {
		p := t.Position(v)
		sx[v], sy[v], depth[v] = r3.Dot(p, cam.right), r3.Dot(p, cam.up), r3.Dot(p, cam.toward)
		minX, maxX = math.Min(minX, sx[v]), math.Max(maxX, sx[v])
		minY, maxY = math.Min(minY, sy[v]), math.Max(maxY, sy[v])
	}
	usable := 1 - 2*o.Margin
	scale := 1.0
	if dx, dy := maxX-minX, maxY-minY; dx > 0 || dy > 0 {
		scale = math.Inf(1)
		if dx > 0 {
			scale = float64(fw) * usable / dx
		}
		if dy > 0 {
			scale = math.Min(scale, float64(fh)*usable/dy)
		}
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	px := func(v int) (float64, float64) {
		return float64(fw)/2 + (sx[v]-cx)*scale, float64(fh)/2 - (sy[v]-cy)*scale
	}

	// 2) Back to front.
	tris := t.Triangles()
	faces := make([]face, len(tris))
	for i, tri := range tris {
		faces[i] = face{tri: tri, depth: (depth[tri[0]] + depth[tri[1]] + depth[tri[2]]) / 3}
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	// 3) Paint.
	dc := gg.NewContext(fw, fh)
	defer dc.Close()
	bg := o.Background
	dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))
	for _, f := range faces {
		a, b, c := t.Position(f.tri[0]), t.Position(f.tri[1]), t.Position(f.tri[2])
		nrm := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		l := r3.Norm(nrm)
		if l == 0 {
			continue
		}
		shade := ambient + (1-ambient)*math.Abs(r3.Dot(nrm, cam.toward))/l
		col := faceColor(colors, f.tri)
		dc.SetRGB(col.R*shade, col.G*shade, col.B*shade)
		x0, y0 := px(f.tri[0])
		x1, y1 := px(f.tri[1])
		x2, y2 := px(f.tri[2])
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
		dc.LineTo(x2, y2)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("render: fill: %w", err)
		}
	}

	// 4) Downscale.
	frame := dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	if ss == 1 {
		draw.Draw(out, out.Bounds(), frame, frame.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	}

	w.Report(o.Logger, slog.Int("triangles", len(faces)), slog.Int("width", o.Width), slog.Int("height", o.Height))
	return out, nil
}

// faceColor is the mean of the vertex colours of tri.
func faceColor(colors []palette.RGB, tri [3]int) palette.RGB {
	if colors == nil {
		return DefaultSurface
	}
	var c palette.RGB
	for _, v := range tri {
		c.R += colors[v].R / 3
		c.G += colors[v].G / 3
		c.B += colors[v].B / 3
	}
	return c
}
