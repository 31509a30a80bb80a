package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/mesh"
)

// Binary STL layout: 80-byte header, uint32 triangle count, then 50 bytes
// per triangle. Only the count is read here, to tell binary from ASCII.
const (
	stlHeaderSize = 80
	stlRecordSize = 50
	stlPrefixSize = stlHeaderSize + 4
)

// ReadSTL decodes a binary or ASCII STL stream. A stream whose length matches
// the binary triangle count exactly is binary, even if its header starts
// with "solid"; otherwise a leading "solid" selects ASCII.
func ReadSTL(r io.Reader) (Soup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Soup{}, fmt.Errorf("meshio: read stl: %w", err)
	}
	if len(raw) >= stlPrefixSize {
		n := int(binary.LittleEndian.Uint32(raw[stlHeaderSize:stlPrefixSize]))
		if stlPrefixSize+n*stlRecordSize == len(raw) {
			return decodeBinarySTL(raw)
		}
	}
	if bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("solid")) {
		return decodeASCIISTL(raw)
	}
	return Soup{}, fmt.Errorf("meshio: stl: %d bytes is neither binary nor ASCII: %w", len(raw), ErrMalformed)
}

// decodeBinarySTL reads the binary layout with model3d. Every facet keeps
// its own three corners.
func decodeBinarySTL(raw []byte) (Soup, error) {
	tris, err := model3d.ReadSTL(bytes.NewReader(raw))
	if err != nil {
		return Soup{}, fmt.Errorf("meshio: stl: %v: %w", err, ErrMalformed)
	}
	s := Soup{
		Positions: make([]r3.Vec, 0, 3*len(tris)),
		Triangles: make([][3]int, 0, len(tris)),
	}
	for _, t := range tris {
		base := len(s.Positions)
		for _, c := range t {
			s.Positions = append(s.Positions, r3.Vec(c))
		}
		s.Triangles = append(s.Triangles, [3]int{base, base + 1, base + 2})
	}
	return s, nil
}

// decodeASCIISTL scans facets line by line so malformed loops are reported
// with their line number.
func decodeASCIISTL(raw []byte) (Soup, error) {
	var s Soup
	loop := 0
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "vertex":
			p, err := parseVec(fields[1:])
			if err != nil {
				return Soup{}, fmt.Errorf("meshio: stl line %d: %w", line, err)
			}
			s.Positions = append(s.Positions, p)
			loop++
		case "endloop":
			if loop != 3 {
				return Soup{}, fmt.Errorf("meshio: stl line %d: loop of %d vertices: %w", line, loop, ErrMalformed)
			}
			b := len(s.Positions) - 3
			s.Triangles = append(s.Triangles, [3]int{b, b + 1, b + 2})
			loop = 0
		}
	}
	if err := sc.Err(); err != nil {
		return Soup{}, fmt.Errorf("meshio: read stl: %w", err)
	}
	if loop != 0 {
		return Soup{}, fmt.Errorf("meshio: stl: unterminated loop: %w", ErrMalformed)
	}
	return s, nil
}

// parseVec parses the first three fields as x y z.
func parseVec(fields []string) (r3.Vec, error) {
	if len(fields) < 3 {
		return r3.Vec{}, fmt.Errorf("want 3 coordinates, got %d: %w", len(fields), ErrMalformed)
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("coordinate %q: %w", fields[i], ErrMalformed)
		}
		c[i] = v
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// WriteSTL encodes t as binary STL with model3d, which derives the facet
// normals from the winding.
func WriteSTL(w io.Writer, t *mesh.Topology) error {
	tris := t.Triangles()
	out := make([]*model3d.Triangle, len(tris))
	for i, tri := range tris {
		out[i] = &model3d.Triangle{
			model3d.Coord3D(t.Position(tri[0])),
			model3d.Coord3D(t.Position(tri[1])),
			model3d.Coord3D(t.Position(tri[2])),
		}
	}
	if err := model3d.WriteSTL(w, out); err != nil {
		return fmt.Errorf("meshio: write stl: %w", err)
	}
	return nil
}
