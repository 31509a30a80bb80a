package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/meshseg/mesh"
)

// ReadOBJ decodes the "v" and "f" statements of a Wavefront OBJ stream.
// Face corners may carry texture and normal references (v/t, v//n, v/t/n);
// only the vertex reference is used. Negative references count back from the
// last vertex read so far. Polygons are fan-triangulated from their first
// corner. Every other statement is ignored.
func ReadOBJ(r io.Reader) (Soup, error) {
	var s Soup
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseVec(fields[1:])
			if err != nil {
				return Soup{}, fmt.Errorf("meshio: obj line %d: %w", line, err)
			}
			s.Positions = append(s.Positions, p)
		case "f":
			if len(fields) < 4 {
				return Soup{}, fmt.Errorf("meshio: obj line %d: face of %d corners: %w", line, len(fields)-1, ErrMalformed)
			}
			corners := make([]int, len(fields)-1)
			for i, tok := range fields[1:] {
				v, err := objIndex(tok, len(s.Positions))
				if err != nil {
					return Soup{}, fmt.Errorf("meshio: obj line %d: %w", line, err)
				}
				corners[i] = v
			}
			for i := 1; i+1 < len(corners); i++ {
				s.Triangles = append(s.Triangles, [3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Soup{}, fmt.Errorf("meshio: read obj: %w", err)
	}
	return s, nil
}

// objIndex resolves one face corner token against n vertices read so far.
func objIndex(tok string, n int) (int, error) {
	ref := tok
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		ref = tok[:i]
	}
	v, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("corner %q: %w", tok, ErrMalformed)
	}
	switch {
	case v > 0 && v <= n:
		return v - 1, nil
	case v < 0 && -v <= n:
		return n + v, nil
	default:
		return 0, fmt.Errorf("corner %q of %d vertices: %w", tok, n, ErrMalformed)
	}
}

// WriteOBJ encodes t as OBJ with one "v" line per vertex and one "f" line
// per triangle, using 1-based references.
func WriteOBJ(w io.Writer, t *mesh.Topology) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < t.Len(); v++ {
		p := t.Position(v)
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for _, tri := range t.Triangles() {
		fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("meshio: write obj: %w", err)
	}
	return nil
}

// ftoa formats f with the shortest representation that round-trips.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
