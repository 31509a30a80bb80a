// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying counts, closure, winding and placement.
package builder_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/builder"
	"github.com/katalvlaran/meshseg/curvature"
	"github.com/katalvlaran/meshseg/geometry"
	"github.com/katalvlaran/meshseg/mesh"
)

// boundaryCount returns the number of border vertices of t.
func boundaryCount(t *mesh.Topology) int {
	n := 0
	for v := 0; v < t.Len(); v++ {
		if t.Boundary(v) {
			n++
		}
	}
	return n
}

// euler returns V − E + F, counting every undirected edge once.
func euler(t *mesh.Topology) int {
	return t.Len() - len(t.HalfEdges())/2 + len(t.Triangles())
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantT int
		closed       bool
	}{
		{"Plane(4,3)", builder.Plane(4, 3), 12, 12, false},
		{"Fold(5,4)", builder.Fold(5, 4, math.Pi/2), 20, 24, false},
		{"Box(1)", builder.Box(1), 8, 12, true},
		{"Box(3)", builder.Box(3), 56, 108, true},
		{"Octahedron", builder.Octahedron(), 6, 8, true},
		{"Icosahedron", builder.Icosahedron(), 12, 20, true},
		{"Icosphere(0)", builder.Icosphere(0), 12, 20, true},
		{"Icosphere(2)", builder.Icosphere(2), 162, 320, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			topo, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, topo.Len())
			require.Len(t, topo.Triangles(), tc.wantT)
			if !tc.closed {
				require.Positive(t, boundaryCount(topo))
				return
			}
			require.Zero(t, boundaryCount(topo), "closed solid has no border")
			require.Equal(t, 2, euler(topo), "sphere topology")
			for v := 0; v < topo.Len(); v++ {
				// Outward winding: normals point away from the centre.
				require.Positive(t, r3.Dot(topo.Normal(v), topo.Position(v)), "vertex %d", v)
			}
		})
	}
}

func TestPlane_Layout(t *testing.T) {
	topo, err := builder.Build(builder.Plane(4, 3))
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 1, Y: 2}, topo.Position(2*4+1))
	require.Equal(t, 10, boundaryCount(topo), "4×3 grid has two interior vertices")
	for v := 0; v < topo.Len(); v++ {
		assert.InDelta(t, 1.0, topo.Normal(v).Z, 1e-12, "plane faces +Z")
	}
}

func TestFold_Geometry(t *testing.T) {
	topo, err := builder.Build(builder.Fold(5, 4, math.Pi/2))
	require.NoError(t, err)

	// Crease column 2; column 4 sits two units up the wall.
	assert.InDelta(t, 0.0, topo.Position(1*5+2).X, 1e-12)
	assert.InDelta(t, 0.0, topo.Position(1*5+4).X, 1e-12)
	assert.InDelta(t, 2.0, topo.Position(1*5+4).Z, 1e-12)
	assert.Equal(t, -2.0, topo.Position(1*5+0).X)

	// A crease is developable: zero Gaussian, non-zero mean curvature.
	crease := curvature.Compute(topo, 1*5+2)
	assert.InDelta(t, 0.0, crease.Gaussian, 1e-9)
	assert.NotZero(t, crease.Mean)
	flat := curvature.Compute(topo, 1*5+1)
	assert.InDelta(t, 0.0, flat.Mean, 1e-12)
}

func TestFold_ZeroAngleIsFlat(t *testing.T) {
	topo, err := builder.Build(builder.Fold(5, 3, 0))
	require.NoError(t, err)
	for v := 0; v < topo.Len(); v++ {
		require.Zero(t, topo.Position(v).Z)
	}
}

// TestGaussBonnet checks that angle deficits of every closed solid sum to 4π.
func TestGaussBonnet(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.Box(2), builder.Octahedron(), builder.Icosphere(1),
	} {
		topo, err := builder.Build(c)
		require.NoError(t, err)
		var total float64
		for v := 0; v < topo.Len(); v++ {
			ring := topo.RingPositions(v)
			k := curvature.Gaussian(topo.Position(v), ring)
			require.NotEqual(t, curvature.Undefined, k)
			total += k * geometry.MixedArea(topo.Position(v), ring)
		}
		require.InDelta(t, 4*math.Pi, total, 1e-9)
	}
}

func TestIcosphere_OnUnitSphere(t *testing.T) {
	topo, err := builder.Build(builder.Icosphere(3))
	require.NoError(t, err)
	require.Equal(t, 642, topo.Len())
	for v := 0; v < topo.Len(); v++ {
		require.InDelta(t, 1.0, r3.Norm(topo.Position(v)), 1e-12)
		require.Positive(t, curvature.Compute(topo, v).Gaussian, "sphere is convex everywhere")
	}
}

func TestBuildMesh_Composes(t *testing.T) {
	topo, err := builder.BuildMesh(nil, builder.Octahedron(), builder.Icosahedron())
	require.NoError(t, err)
	require.Equal(t, 18, topo.Len())
	for _, u := range topo.Ring(6) {
		require.GreaterOrEqual(t, u, 6, "second component keeps its own indices")
	}
}

func TestBuildMesh_Placement(t *testing.T) {
	topo, err := builder.BuildMesh(
		[]builder.BuilderOption{builder.WithScale(2), builder.WithOffset(r3.Vec{Z: 10})},
		builder.Octahedron(),
	)
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 2, Z: 10}, topo.Position(0))

	b := topo.Bounds()
	require.Equal(t, r3.Vec{X: -2, Y: -2, Z: 8}, b.Min)
}

func TestBuildMesh_JitterIsSeeded(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.01)}
	a, err := builder.BuildMesh(opts, builder.Plane(3, 3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.01)}
	b, err := builder.BuildMesh(opts, builder.Plane(3, 3))
	require.NoError(t, err)
	require.Equal(t, a.Positions(), b.Positions())
	require.NotEqual(t, r3.Vec{}, a.Position(0), "jitter moved the corner")
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"plane cols", builder.Plane(1, 3), builder.ErrTooFewVertices},
		{"plane rows", builder.Plane(3, 0), builder.ErrTooFewVertices},
		{"fold cols", builder.Fold(2, 3, 1), builder.ErrTooFewVertices},
		{"fold flat back", builder.Fold(5, 5, math.Pi), builder.ErrInvalidAngle},
		{"fold negative", builder.Fold(5, 5, -0.1), builder.ErrInvalidAngle},
		{"fold NaN", builder.Fold(5, 5, math.NaN()), builder.ErrInvalidAngle},
		{"box", builder.Box(0), builder.ErrTooFewVertices},
		{"icosphere negative", builder.Icosphere(-1), builder.ErrTooFewVertices},
		{"icosphere too fine", builder.Icosphere(builder.MaxSubdivisions + 1), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildMesh(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildMesh([]builder.BuilderOption{builder.WithJitter(0.1)}, builder.Octahedron())
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithJitter(-1) })
	require.Panics(t, func() { builder.WithJitter(math.NaN()) })
	require.Panics(t, func() { builder.WithScale(0) })
	require.Panics(t, func() { builder.WithScale(math.Inf(1)) })
}

func TestShape(t *testing.T) {
	for _, tok := range []string{"plane", "fold", "box", "octahedron", "icosahedron", "icosphere"} {
		name, err := builder.ParseShape(tok)
		require.NoError(t, err)
		require.Equal(t, tok, name.String())

		ctor, err := builder.Shape(name, 4, math.Pi/3)
		require.NoError(t, err)
		_, err = builder.Build(ctor)
		require.NoError(t, err, tok)
	}

	name, err := builder.ParseShape(" IcoSphere ")
	require.NoError(t, err)
	require.Equal(t, builder.ShapeIcosphere, name)

	_, err = builder.ParseShape("torus")
	require.ErrorIs(t, err, builder.ErrUnknownShape)
	_, err = builder.Shape(builder.ShapeName(99), 1, 0)
	require.ErrorIs(t, err, builder.ErrUnknownShape)
}

func ExampleIcosphere() {
	topo, _ := builder.Build(builder.Icosphere(1))
	fmt.Println(topo.Len(), len(topo.Triangles()))
	// Output: 42 80
}
