// Package curvature estimates discrete per-vertex curvature of a triangle mesh.
//
// Gaussian curvature is the angle deficit divided by the mixed Voronoi cell
// area:
//
//	K(p) = (2π − Σ θ_j) / A_mixed(p)
//
// Mean curvature comes from the cotangent Laplace–Beltrami operator projected
// on the vertex normal:
//
//	K⃗(p) = 1/(2·A_mixed) · Σ_j (cot α_j + cot β_j)(p − q_j)
//	H(p)  = ½ · ⟨K⃗(p), n(p)⟩
//
// Together they give the principal curvatures k1,2 = H ± √(H² − K).
//
// The estimators never fail. When the mixed area is numerically zero
// (≤ geometry.Eps) the Gaussian value is the sentinel Undefined
// (math.MaxFloat64) and the mean value is 0; NaN is never produced.
//
// Complexity: O(deg(v)) per vertex, O(Σ deg) for ComputeAll.
package curvature

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/geometry"
	"github.com/katalvlaran/meshseg/mesh"
)

// Undefined is the Gaussian curvature reported for degenerate (cone, isolated
// or collinear) vertices: the largest finite float64.
const Undefined = math.MaxFloat64

// Sample is the curvature pair of one vertex.
type Sample struct {
	Gaussian float64
	Mean     float64
}

// Defined reports whether the sample was computed from a non-degenerate cell.
func (s Sample) Defined() bool {
	return s.Gaussian != Undefined
}

// Gaussian returns the discrete Gaussian curvature of p given its ordered
// 1-ring, or Undefined when the mixed area is ≤ geometry.Eps.
func Gaussian(p r3.Vec, ring []r3.Vec) float64 {
	area := geometry.MixedArea(p, ring)
	if area <= geometry.Eps {
		return Undefined
	}
	return (2*math.Pi - geometry.AngleSum(p, ring)) / area
}

// Mean returns the discrete mean curvature of p with unit normal n, or 0 when
// the mixed area is ≤ geometry.Eps. Zero-area fan triangles contribute nothing.
func Mean(p, n r3.Vec, ring []r3.Vec) float64 {
	area := geometry.MixedArea(p, ring)
	if area <= geometry.Eps {
		return 0
	}
	var lap r3.Vec
	geometry.Fan(ring, func(q, r r3.Vec) {
		if geometry.TriangleArea(p, q, r) <= 0 {
			return
		}
		// The angle at r faces edge p–q, the angle at q faces edge p–r.
		cotR := geometry.Cot(r3.Sub(p, r), r3.Sub(q, r))
		cotQ := geometry.Cot(r3.Sub(p, q), r3.Sub(r, q))
		lap = r3.Add(lap, r3.Scale(cotR, r3.Sub(p, q)))
		lap = r3.Add(lap, r3.Scale(cotQ, r3.Sub(p, r)))
	})
	k := r3.Scale(1/(2*area), lap)
	return 0.5 * r3.Dot(k, n)
}

// Compute returns the curvature sample of vertex v of t.
func Compute(t *mesh.Topology, v int) Sample {
	p := t.Position(v)
	ring := t.RingPositions(v)
	return Sample{
		Gaussian: Gaussian(p, ring),
		Mean:     Mean(p, t.Normal(v), ring),
	}
}

// ComputeAll returns one sample per vertex of t, indexed by vertex.
func ComputeAll(t *mesh.Topology) []Sample {
	out := make([]Sample, t.Len())
	for v := range out {
		out[v] = Compute(t, v)
	}
	return out
}

// Principal returns the principal curvatures k1 ≥ k2 of s. A slightly
// negative discriminant from discretization error is treated as zero.
// ok is false for undefined samples.
func Principal(s Sample) (k1, k2 float64, ok bool) {
	if !s.Defined() {
		return 0, 0, false
	}
	d := math.Sqrt(math.Max(s.Mean*s.Mean-s.Gaussian, 0))
	return s.Mean + d, s.Mean - d, true
}
