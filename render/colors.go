package render

import "github.com/katalvlaran/meshseg/palette"

// FieldColors maps a normalized scalar field (values in [0,1]) to the red to
// blue hue ramp of palette.FromNormalized.
func FieldColors(field []float64) []palette.RGB {
	out := make([]palette.RGB, len(field))
	for i, v := range field {
		out[i] = palette.FromNormalized(v)
	}
	return out
}

// Regions paints n vertices base, then each region's vertices in its colour.
// Later regions overwrite earlier ones, as repeated cuts do on screen.
func Regions(n int, base palette.RGB, regions ...Region) []palette.RGB {
	out := make([]palette.RGB, n)
	for i := range out {
		out[i] = base
	}
	for _, r := range regions {
		for _, v := range r.Vertices {
			if v >= 0 && v < n {
				out[v] = r.Color
			}
		}
	}
	return out
}

// Region is a coloured vertex set.
type Region struct {
	Vertices []int
	Color    palette.RGB
}
