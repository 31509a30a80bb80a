package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/geometry"
)

// hexRing returns six unit-distance neighbours of the origin in the XY plane.
func hexRing() []r3.Vec {
	ring := make([]r3.Vec, 6)
	for i := range ring {
		a := float64(i) * math.Pi / 3
		ring[i] = r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	return ring
}

func TestTriangleArea_NonNegativeAndMatchesCross(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	rv := func() r3.Vec { return r3.Vec{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()} }
	for i := 0; i < 200; i++ {
		a, b, c := rv(), rv(), rv()
		got := geometry.TriangleArea(a, b, c)
		want := 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
		require.GreaterOrEqual(t, got, 0.0)
		require.InDelta(t, want, got, 1e-12)
	}
	assert.Equal(t, 0.5, geometry.TriangleArea(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}))
}

func TestAngle_ClampsAndHandlesZeroVectors(t *testing.T) {
	assert.InDelta(t, math.Pi/2, geometry.Angle(r3.Vec{X: 1}, r3.Vec{Y: 2}), 1e-12)
	assert.InDelta(t, math.Pi, geometry.Angle(r3.Vec{X: 1}, r3.Vec{X: -3}), 1e-12)
	assert.InDelta(t, 0.0, geometry.Angle(r3.Vec{X: 1e-3, Y: 1e-3}, r3.Vec{X: 1e3, Y: 1e3}), 1e-6)
	assert.Equal(t, 0.0, geometry.Angle(r3.Vec{}, r3.Vec{X: 1}))
	assert.False(t, math.IsNaN(geometry.Angle(r3.Vec{X: 1, Y: 1e-9}, r3.Vec{X: 1})))
}

func TestCot(t *testing.T) {
	// 45 degrees
	assert.InDelta(t, 1.0, geometry.Cot(r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}), 1e-12)
	// right angle
	assert.InDelta(t, 0.0, geometry.Cot(r3.Vec{X: 1}, r3.Vec{Y: 1}), 1e-12)
}

func TestMixedArea_RegularHexagon(t *testing.T) {
	// All six triangles are equilateral (non-obtuse) so the Voronoi cell is
	// one third of the fan area: 6 · (√3/4) / 3.
	got := geometry.MixedArea(r3.Vec{}, hexRing())
	assert.InDelta(t, math.Sqrt(3)/2, got, 1e-9)
}

func TestMixedArea_ObtuseSplit(t *testing.T) {
	p := r3.Vec{}
	// Angle at p is obtuse (120°) in the single triangle (p,q,r); the wrap
	// triangle (p,r,q) is the same triangle, so each adds half the area.
	q := r3.Vec{X: 1}
	r := r3.Vec{X: math.Cos(2 * math.Pi / 3), Y: math.Sin(2 * math.Pi / 3)}
	area := geometry.TriangleArea(p, q, r)
	assert.InDelta(t, area, geometry.MixedArea(p, []r3.Vec{q, r}), 1e-12)

	// Obtuse at q instead: quarter split.
	q = r3.Vec{X: 1}
	r = r3.Vec{X: 2, Y: 0.2}
	area = geometry.TriangleArea(p, q, r)
	assert.InDelta(t, 0.5*area, geometry.MixedArea(p, []r3.Vec{q, r}), 1e-12)
}

func TestAngleSum_FlatFanIsTwoPi(t *testing.T) {
	assert.InDelta(t, 2*math.Pi, geometry.AngleSum(r3.Vec{}, hexRing()), 1e-12)
	assert.Equal(t, 0.0, geometry.AngleSum(r3.Vec{}, []r3.Vec{{X: 1}}))
}

func TestRemap(t *testing.T) {
	assert.Equal(t, 0.5, geometry.Remap(5, 0, 10, 0, 1))
	assert.Equal(t, 3.0, geometry.Remap(1, 0, 1, -1, 3))
	assert.Equal(t, 2.0, geometry.Remap(7, 4, 4, 2, 9), "degenerate input range")
}
