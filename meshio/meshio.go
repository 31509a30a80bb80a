// Package meshio loads and saves triangle meshes in the two formats meshseg
// needs for end-to-end runs: STL (binary and ASCII) and Wavefront OBJ
// (vertices and faces only).
//
// Decoders produce a Soup: raw positions and triangles exactly as stored.
// Read then welds duplicate positions (model3d vertex repair), drops
// triangles that collapsed during welding and derives a mesh.Topology. STL stores every triangle with its own
// three corners, so welding is what turns it into a connected surface.
//
// Neither decoder aims at format completeness: normals, texture coordinates,
// materials, groups and STL attribute words are ignored.
package meshio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg"
	"github.com/katalvlaran/meshseg/mesh"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// is neither STL nor OBJ.
	ErrUnknownFormat = errors.New("meshio: unknown format")

	// ErrMalformed is returned when the input cannot be decoded.
	ErrMalformed = errors.New("meshio: malformed input")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("meshio: invalid option supplied")
)

// DefaultWeldTolerance is the distance below which positions are merged.
const DefaultWeldTolerance = 1e-6

// Format identifies an on-disk mesh encoding.
type Format int

const (
	// FormatSTL is STL, binary or ASCII (detected on read, binary on write).
	FormatSTL Format = iota
	// FormatOBJ is Wavefront OBJ.
	FormatOBJ
)

// String returns the lowercase file extension of f without the dot.
func (f Format) String() string {
	switch f {
	case FormatSTL:
		return "stl"
	case FormatOBJ:
		return "obj"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return FormatSTL, nil
	case ".obj":
		return FormatOBJ, nil
	default:
		return 0, fmt.Errorf("meshio: %s: %w", path, ErrUnknownFormat)
	}
}

// Soup is an unwelded triangle list.
type Soup struct {
	Positions []r3.Vec
	Triangles [][3]int
}

// Options configures Read and Load.
type Options struct {
	// Weld merges positions closer than WeldTolerance. Enabled by default.
	Weld bool

	// WeldTolerance is the merge distance; 0 merges exact duplicates only.
	WeldTolerance float64

	// Center translates the result so its bounding box is centred at the
	// origin.
	Center bool

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns welding on at DefaultWeldTolerance, no centring.
func DefaultOptions() Options {
	return Options{Weld: true, WeldTolerance: DefaultWeldTolerance}
}

// WithWeld enables or disables vertex welding.
func WithWeld(on bool) Option {
	return func(o *Options) { o.Weld = on }
}

// WithWeldTolerance sets the merge distance. It must be finite and not
// negative.
func WithWeldTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol >= 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: weld tolerance must be ≥ 0 (%v)", ErrOptionViolation, tol)
			return
		}
		o.WeldTolerance = tol
	}
}

// WithCenter enables or disables centring at the bounding-box centre.
func WithCenter(on bool) Option {
	return func(o *Options) { o.Center = on }
}

func resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}

// Decode reads a raw Soup in format f.
func Decode(r io.Reader, f Format) (Soup, error) {
	switch f {
	case FormatSTL:
		return ReadSTL(r)
	case FormatOBJ:
		return ReadOBJ(r)
	default:
		return Soup{}, fmt.Errorf("meshio: Decode: format %d: %w", int(f), ErrUnknownFormat)
	}
}

// Read decodes r in format f and turns the soup into a Topology.
//
// Implementation:
//   - Stage 1: Decode the soup.
//   - Stage 2: Weld positions (unless disabled) and drop collapsed triangles.
//   - Stage 3: Derive rings and normals with mesh.FromTriangles.
//   - Stage 4: Centre the topology if requested.
//
// Merged vertices are logged at Warn level for OBJ, which is expected to
// share vertices already, and at Info level for STL, which never does.
func Read(r io.Reader, f Format, opts ...Option) (*mesh.Topology, error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}
	s, err := Decode(r, f)
	if err != nil {
		return nil, err
	}

	log := meshseg.Logger()
	if o.Weld {
		var merged, dropped int
		s, merged, dropped = Weld(s, o.WeldTolerance)
		level := slog.LevelWarn
		if f == FormatSTL {
			level = slog.LevelInfo
		}
		if merged > 0 {
			log.Log(context.Background(), level, "meshio: welded duplicate vertices",
				slog.String("format", f.String()), slog.Int("merged", merged), slog.Int("vertices", len(s.Positions)))
		}
		if dropped > 0 {
			log.Warn("meshio: dropped collapsed triangles", slog.Int("count", dropped))
		}
	}

	topo, err := mesh.FromTriangles(s.Positions, s.Triangles)
	if err != nil {
		return nil, fmt.Errorf("meshio: Read: %w", err)
	}
	if o.Center {
		topo = topo.Centered()
	}
	return topo, nil
}

// Load opens path and reads it in the format implied by its extension.
func Load(path string, opts ...Option) (*mesh.Topology, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %s: %w", path, err)
	}
	defer file.Close()

	w := meshseg.StartStopwatch("load")
	topo, err := Read(file, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("meshio: load %s: %w", path, err)
	}
	w.Report(nil, slog.String("path", path), slog.Int("vertices", topo.Len()))
	return topo, nil
}

// Write encodes t in format f.
func Write(w io.Writer, t *mesh.Topology, f Format) error {
	switch f {
	case FormatSTL:
		return WriteSTL(w, t)
	case FormatOBJ:
		return WriteOBJ(w, t)
	default:
		return fmt.Errorf("meshio: Write: format %d: %w", int(f), ErrUnknownFormat)
	}
}

// Save writes t to path in the format implied by its extension.
func Save(path string, t *mesh.Topology) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("meshio: close %s: %w", path, cerr)
		}
	}()
	return Write(file, t, f)
}

// Weld merges positions closer than about tol with model3d's vertex repair
// and remaps the triangles; tol 0 merges exact duplicates only. Triangles
// whose corners collapsed onto fewer than three distinct vertices are
// dropped, and only vertices of the remaining triangles are kept.
//
// A soup that needs no change is returned as is, so indexed formats keep
// their numbering. Otherwise vertices are ordered by coordinate and every
// triangle starts at its lowest index, which makes the result independent
// of the library's internal ordering.
func Weld(s Soup, tol float64) (out Soup, merged, dropped int) {
	tris := make([]*model3d.Triangle, len(s.Triangles))
	used := make(map[int]struct{}, len(s.Positions))
	for i, t := range s.Triangles {
		tris[i] = &model3d.Triangle{
			model3d.Coord3D(s.Positions[t[0]]),
			model3d.Coord3D(s.Positions[t[1]]),
			model3d.Coord3D(s.Positions[t[2]]),
		}
		for _, v := range t {
			used[v] = struct{}{}
		}
	}
	m := model3d.NewMeshTriangles(tris)
	if tol > 0 {
		m = m.Repair(tol)
	}

	var kept []*model3d.Triangle
	welded := make(map[model3d.Coord3D]struct{}, len(used))
	m.Iterate(func(t *model3d.Triangle) {
		for _, c := range t {
			welded[c] = struct{}{}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return
		}
		kept = append(kept, t)
	})
	merged = len(used) - len(welded)
	dropped = len(s.Triangles) - len(kept)
	if merged == 0 && dropped == 0 {
		return s, 0, 0
	}

	coords := make([]model3d.Coord3D, 0, len(welded))
	seen := make(map[model3d.Coord3D]int, len(welded))
	for _, t := range kept {
		for _, c := range t {
			if _, ok := seen[c]; !ok {
				seen[c] = 0
				coords = append(coords, c)
			}
		}
	}
	sort.Slice(coords, func(i, j int) bool { return lessCoord(coords[i], coords[j]) })
	out.Positions = make([]r3.Vec, len(coords))
	for i, c := range coords {
		seen[c] = i
		out.Positions[i] = r3.Vec(c)
	}

	out.Triangles = make([][3]int, len(kept))
	for i, t := range kept {
		tri := [3]int{seen[t[0]], seen[t[1]], seen[t[2]]}
		for tri[0] > tri[1] || tri[0] > tri[2] {
			tri = [3]int{tri[1], tri[2], tri[0]}
		}
		out.Triangles[i] = tri
	}
	sort.Slice(out.Triangles, func(i, j int) bool {
		a, b := out.Triangles[i], out.Triangles[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out, merged, dropped
}

// lessCoord orders coordinates by X, then Y, then Z.
func lessCoord(a, b model3d.Coord3D) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
