package energy_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/energy"
	"github.com/katalvlaran/meshseg/window"
)

func TestQuality(t *testing.T) {
	assert.Equal(t, 1.0, energy.Quality(0))
	assert.InDelta(t, math.Exp(-2), energy.Quality(2), 1e-15)
	assert.Zero(t, energy.Quality(curvature.Undefined))
}

func TestMap_Thresholds(t *testing.T) {
	// The densest three of seven values, the sentinel included, are {1,2,3}:
	// below 1 saturates, above 3 is free.
	curv := []float64{-5, 1, 2, 3, 8, 100, curvature.Undefined}
	field, win, err := energy.Map(curv, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1.0, win.Lower)
	require.Equal(t, 3.0, win.Upper)

	want := energy.Field{
		energy.DefaultInfinite,
		math.Exp(-1),
		math.Exp(-2),
		math.Exp(-3),
		0,
		0,
		0,
	}
	if d := cmp.Diff(want, field, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", d)
	}
	for i, v := range field {
		require.GreaterOrEqual(t, v, 0.0, "vertex %d", i)
	}
}

func TestMap_CustomInfinite(t *testing.T) {
	field, _, err := energy.Map([]float64{-1, 0, 0, 0}, 0.75, energy.WithInfinite(42))
	require.NoError(t, err)
	require.Equal(t, 42.0, field[0])
}

func TestMap_Errors(t *testing.T) {
	_, _, err := energy.Map([]float64{1, 2}, 0.1)
	require.ErrorIs(t, err, window.ErrInvalidArgument)

	_, _, err = energy.Map([]float64{1, 2}, 1, energy.WithScale(-1))
	require.ErrorIs(t, err, energy.ErrOptionViolation)
}

func TestMap_AllUndefined(t *testing.T) {
	curv := []float64{curvature.Undefined, curvature.Undefined, curvature.Undefined}
	field, win, err := energy.Map(curv, 0.5)
	require.NoError(t, err)
	require.Equal(t, curvature.Undefined, win.Lower)
	require.Equal(t, curvature.Undefined, win.Upper)
	require.Equal(t, energy.Field{0, 0, 0}, field)
}

func TestMap_StronglyNegativeCurvatureStaysFinite(t *testing.T) {
	// exp(2000) overflows; the saturated vertices must still cost Infinite.
	curv := []float64{-2000, -1990, -1980, -1970, 5, 10}
	field, win, err := energy.Map(curv, 0.5)
	require.NoError(t, err)
	require.Equal(t, -2000.0, win.Lower)
	require.Equal(t, -1980.0, win.Upper)
	require.Equal(t, energy.Field{energy.DefaultInfinite, energy.DefaultInfinite, energy.DefaultInfinite, 0, 0, 0}, field)

	for i, u := range field {
		require.False(t, math.IsInf(u, 0) || math.IsNaN(u), "vertex %d", i)
		require.GreaterOrEqual(t, u, 0.0, "vertex %d", i)
		require.LessOrEqual(t, u, energy.DefaultInfinite, "vertex %d", i)
		for _, v := range field {
			c := energy.Capacity(u, v)
			require.GreaterOrEqual(t, c, int64(1))
			require.LessOrEqual(t, c, energy.DefaultMaxCapacity)
		}
	}
	for _, v := range energy.Normalize(field) {
		require.True(t, v >= 0 && v <= 1, "normalized %v", v)
	}
}

func TestCapacity(t *testing.T) {
	cases := []struct {
		name   string
		u, v   float64
		expect int64
	}{
		{"equal costs", 0.3, 0.3, energy.DefaultMaxCapacity},
		{"unit step", 1, 0, 1000},
		{"symmetric", 0, 1, 1000},
		{"rounded", 0, 3, 333},
		{"steep step floors at one", 0, energy.DefaultInfinite, 1},
		{"tiny step hits the ceiling", 0, 1e-8, energy.DefaultMaxCapacity},
		{"equal infinities", math.Inf(1), math.Inf(1), energy.DefaultMaxCapacity},
		{"infinite step", 0, math.Inf(1), 1},
		{"NaN cost", math.NaN(), 1, energy.DefaultMaxCapacity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, energy.Capacity(tc.u, tc.v))
		})
	}
}

func TestCapacity_Options(t *testing.T) {
	o, err := energy.Resolve(energy.WithScale(10), energy.WithMaxCapacity(50), energy.WithEpsilon(0.01))
	require.NoError(t, err)
	require.Equal(t, int64(10), o.Capacity(0, 1))
	require.Equal(t, int64(50), o.Capacity(0, 0.005))
	require.Equal(t, int64(50), o.Capacity(0, 0.1))

	_, err = energy.Resolve(energy.WithMaxCapacity(0))
	require.ErrorIs(t, err, energy.ErrOptionViolation)
	_, err = energy.Resolve(energy.WithEpsilon(math.NaN()))
	require.ErrorIs(t, err, energy.ErrOptionViolation)
	_, err = energy.Resolve(energy.WithInfinite(math.Inf(1)))
	require.ErrorIs(t, err, energy.ErrOptionViolation)
}

func TestNormalize(t *testing.T) {
	got := energy.Normalize(energy.Field{2, 4, 3})
	if d := cmp.Diff([]float64{0, 1, 0.5}, got); d != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", d)
	}
	require.Equal(t, []float64{0, 0}, energy.Normalize(energy.Field{7, 7}))
	require.Empty(t, energy.Normalize(nil))

	got = energy.Normalize(energy.Field{math.Inf(1), 2, 4, math.NaN()})
	require.Equal(t, []float64{1, 0, 1, 0}, got)
}
