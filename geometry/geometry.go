// Package geometry provides the small vector formulas shared by the
// curvature estimators: triangle areas, clamped angles, cotangents and the
// mixed Voronoi cell area of a vertex.
//
// All functions are pure and operate on gonum r3.Vec values. None of them
// returns NaN for finite input: out-of-domain cosine arguments are clamped
// and zero-length vectors yield a zero angle.
package geometry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg"
)

// Eps is the area threshold below which a mixed Voronoi cell is considered
// numerically zero.
const Eps = 1e-6

// HalfPi is π/2, the obtuse-angle threshold.
const HalfPi = math.Pi / 2

// cosineReportThreshold is how far a cosine may stray outside [-1,1] before the
// clamp is reported as a diagnostic.
const cosineReportThreshold = 0.1

// TriangleArea returns 0.5·|cross(b−a, c−a)|. The result is never negative.
func TriangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// Angle returns the unsigned angle between a and b in radians.
//
// The cosine argument is clamped to [-1,1] before inversion; a deviation larger
// than 0.1 is logged at Debug level and otherwise ignored. If either vector has
// zero length the angle is 0.
func Angle(a, b r3.Vec) float64 {
	den := r3.Norm(a) * r3.Norm(b)
	if den == 0 {
		return 0
	}
	d := r3.Dot(a, b) / den
	if math.Abs(d) > 1 {
		if math.Abs(d)-1 > cosineReportThreshold {
			meshseg.Logger().Debug("geometry: cosine outside [-1,1] clamped", slog.Float64("d", d))
		}
		d = math.Max(-1, math.Min(1, d))
	}
	return math.Abs(math.Acos(d))
}

// Cot returns the cotangent of the angle between a and b: dot(a,b)/|cross(a,b)|.
// Parallel vectors produce ±Inf, as the formula does.
func Cot(a, b r3.Vec) float64 {
	return r3.Dot(a, b) / r3.Norm(r3.Cross(a, b))
}

// VoronoiRegion is the Voronoi contribution of the non-obtuse triangle (p,q,r)
// to vertex p: (1/8)(|p−r|²·cot∠q + |p−q|²·cot∠r).
func VoronoiRegion(p, q, r r3.Vec) float64 {
	cotq := Cot(r3.Sub(p, q), r3.Sub(r, q))
	cotr := Cot(r3.Sub(p, r), r3.Sub(q, r))
	return (1.0 / 8.0) * (r3.Norm2(r3.Sub(p, r))*cotq + r3.Norm2(r3.Sub(p, q))*cotr)
}

// Fan calls fn for every consecutive pair (q, r) of the ordered ring around p,
// wrapping the last neighbour back to the first. A ring of fewer than two
// vertices has no pairs.
func Fan(ring []r3.Vec, fn func(q, r r3.Vec)) {
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		fn(ring[i], ring[(i+1)%n])
	}
}

// MixedArea returns the mixed Voronoi cell area of p given its ordered 1-ring.
//
// For each adjacent triangle (p,q,r): if no angle is obtuse the true Voronoi
// region is added; otherwise half the triangle area when the angle at p is
// obtuse and a quarter when another angle is.
func MixedArea(p r3.Vec, ring []r3.Vec) float64 {
	var area float64
	Fan(ring, func(q, r r3.Vec) {
		pa := Angle(r3.Sub(q, p), r3.Sub(r, p))
		qa := Angle(r3.Sub(p, q), r3.Sub(r, q))
		ra := math.Pi - (pa + qa)
		switch {
		case pa <= HalfPi && qa <= HalfPi && ra <= HalfPi:
			area += VoronoiRegion(p, q, r)
		case pa > HalfPi:
			area += 0.5 * TriangleArea(p, q, r)
		default:
			area += 0.25 * TriangleArea(p, q, r)
		}
	})
	return area
}

// AngleSum returns the sum of the angles at p over all triangles of its fan.
func AngleSum(p r3.Vec, ring []r3.Vec) float64 {
	var sum float64
	Fan(ring, func(q, r r3.Vec) {
		sum += Angle(r3.Sub(q, p), r3.Sub(r, p))
	})
	return sum
}

// Remap linearly maps x from [inMin, inMax] to [outMin, outMax].
// A degenerate input range maps everything to outMin.
func Remap(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
