package curvature_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/mesh"
)

// octahedron returns the unit octahedron with outward winding.
func octahedron(t testing.TB) *mesh.Topology {
	t.Helper()
	pos := []r3.Vec{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	tris := [][3]int{
		{4, 0, 2}, {4, 2, 1}, {4, 1, 3}, {4, 3, 0},
		{5, 2, 0}, {5, 1, 2}, {5, 3, 1}, {5, 0, 3},
	}
	topo, err := mesh.FromTriangles(pos, tris)
	require.NoError(t, err)
	return topo
}

// hexRing is the ordered ring of a flat regular hexagon around the origin.
func hexRing() []r3.Vec {
	ring := make([]r3.Vec, 6)
	for i := range ring {
		a := float64(i) * math.Pi / 3
		ring[i] = r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	return ring
}

func TestFlatVertexHasZeroCurvature(t *testing.T) {
	p, n := r3.Vec{}, r3.Vec{Z: 1}
	assert.InDelta(t, 0.0, curvature.Gaussian(p, hexRing()), 1e-9)
	assert.InDelta(t, 0.0, curvature.Mean(p, n, hexRing()), 1e-9)
}

func TestDegenerateVertexIsUndefined(t *testing.T) {
	cases := map[string][]r3.Vec{
		"isolated":   nil,
		"single":     {{X: 1}},
		"collinear":  {{X: 1}, {X: 2}},
		"coincident": {{}, {}, {}},
	}
	for name, ring := range cases {
		t.Run(name, func(t *testing.T) {
			k := curvature.Gaussian(r3.Vec{}, ring)
			h := curvature.Mean(r3.Vec{}, r3.Vec{Z: 1}, ring)
			require.Equal(t, curvature.Undefined, k)
			require.False(t, math.IsNaN(h))
			require.Zero(t, h)
		})
	}
}

func TestOctahedronVertex(t *testing.T) {
	topo := octahedron(t)
	samples := curvature.ComputeAll(topo)
	require.Len(t, samples, 6)

	// Four equilateral corners of π/3 over four Voronoi thirds of √3/2.
	wantK := math.Pi / math.Sqrt(3)
	for v, s := range samples {
		require.True(t, s.Defined(), "vertex %d", v)
		assert.InDelta(t, wantK, s.Gaussian, 1e-9, "gaussian at %d", v)
		assert.InDelta(t, 1.0, s.Mean, 1e-9, "mean at %d", v)
	}
}

func TestPrincipal(t *testing.T) {
	k1, k2, ok := curvature.Principal(curvature.Sample{Gaussian: 2, Mean: 3})
	require.True(t, ok)
	assert.InDelta(t, 3+math.Sqrt(7), k1, 1e-12)
	assert.InDelta(t, 3-math.Sqrt(7), k2, 1e-12)
	assert.InDelta(t, 2.0, k1*k2, 1e-9, "k1·k2 recovers K")

	// Negative discriminant collapses to an umbilic point.
	k1, k2, ok = curvature.Principal(curvature.Sample{Gaussian: 5, Mean: 1})
	require.True(t, ok)
	assert.Equal(t, k1, k2)

	_, _, ok = curvature.Principal(curvature.Sample{Gaussian: curvature.Undefined})
	require.False(t, ok)
}

func TestSelect(t *testing.T) {
	samples := []curvature.Sample{
		{Gaussian: 0.5, Mean: -2},
		{Gaussian: curvature.Undefined},
	}
	cases := []struct {
		kind curvature.Kind
		want float64
	}{
		{curvature.KindGaussian, 0.5},
		{curvature.KindMean, -2},
		{curvature.KindAbsMean, 2},
		{curvature.KindMaxAbsPrincipal, 2 + math.Sqrt(3.5)},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got := curvature.Select(samples, tc.kind)
			require.InDelta(t, tc.want, got[0], 1e-12)
			require.Equal(t, curvature.Undefined, got[1])
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []curvature.Kind{
		curvature.KindGaussian, curvature.KindMean, curvature.KindAbsMean, curvature.KindMaxAbsPrincipal,
	} {
		got, err := curvature.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := curvature.ParseKind("ricci")
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	values := []float64{1, 4, curvature.Undefined, -2, 7}
	s := curvature.Summarize(values)
	require.Equal(t, 4, s.Count)
	require.Equal(t, 1, s.Undefined)
	require.Equal(t, -2.0, s.Min)
	require.Equal(t, 7.0, s.Max)

	defined := []float64{1, 4, -2, 7}
	assert.InDelta(t, stat.Mean(defined, nil), s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(stat.Variance(defined, nil)), s.StdDev, 1e-12)

	empty := curvature.Summarize([]float64{curvature.Undefined})
	require.Zero(t, empty.Count)
	require.Zero(t, empty.StdDev)
}

func ExamplePrincipal() {
	k1, k2, _ := curvature.Principal(curvature.Sample{Gaussian: 0, Mean: 0.5})
	fmt.Printf("k1=%.1f k2=%.1f\n", k1, k2)
	// Output: k1=1.0 k2=0.0
}
