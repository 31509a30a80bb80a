// Package window finds the densest contiguous window of a sample set: the run
// of sorted values, of a fixed share of the population, with the smallest
// variance.
//
// The window bounds act as a robust percentile range. Unlike a plain
// quantile cut they follow the bulk of the distribution, so a few extreme
// outliers (typical of curvature at sharp features) do not drag the range.
//
// Algorithm:
//   - Stage 1: Copy and sort the samples ascending; the input is never mutated.
//   - Stage 2: Compute mean and sum of squared deviations of the first window.
//   - Stage 3: Slide the window one element at a time. Each step exchanges the
//     outgoing value for the incoming one and updates mean and squared
//     deviations in O(1).
//   - Stage 4: Keep the earliest window with the smallest spread.
//
// Samples beyond ±Huge (such as the curvature.Undefined sentinel) take part
// in the scan like any other value. A window touching one has spread 0 when
// all of its samples are equal and +Inf otherwise, and the running sums are
// rebuilt once the window leaves such samples behind.
//
// Complexity: O(N log N) for the sort, O(N) for the scan; O(N) memory.
package window

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidArgument is returned when the fraction is outside (0,1] or the
// window would contain no samples.
var ErrInvalidArgument = errors.New("window: invalid argument")

// Window is the value range of the densest window. Lower ≤ Upper and both are
// actual sample values.
type Window struct {
	Lower, Upper float64

	// Start is the index of Lower in the sorted samples; Size the number of
	// samples the window spans.
	Start, Size int
}

// Contains reports whether x lies inside [Lower, Upper].
func (w Window) Contains(x float64) bool {
	return x >= w.Lower && x <= w.Upper
}

// Size returns the window size used for n samples: floor(fraction·n).
func Size(n int, fraction float64) int {
	return int(math.Floor(fraction * float64(n)))
}

// Densest returns the densest window holding floor(fraction·len(samples))
// consecutive sorted samples.
//
// Errors:
//   - ErrInvalidArgument if fraction is NaN or outside (0,1].
//   - ErrInvalidArgument if the window size rounds down to zero, which
//     includes an empty sample set.
//
// All N − size + 1 windows are scanned; on equal spread, saturated spreads
// included, the earliest (lowest) window wins.
func Densest(samples []float64, fraction float64) (Window, error) {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return Window{}, fmt.Errorf("window: Densest: fraction %v: %w", fraction, ErrInvalidArgument)
	}
	n := len(samples)
	size := Size(n, fraction)
	if size < 1 {
		return Window{}, fmt.Errorf("window: Densest: %v of %d samples is empty: %w", fraction, n, ErrInvalidArgument)
	}

	s := append([]float64(nil), samples...)
	sort.Float64s(s)

	best, bestM2 := 0, math.Inf(1)
	var mean, m2 float64
	stale := true
	for start := 0; start+size <= n; start++ {
		lo, hi := s[start], s[start+size-1]
		switch {
		case huge(lo) || huge(hi):
			m2, stale = hugeSpread(lo, hi), true
		case stale:
			mean, m2 = moments(s[start : start+size])
			stale = false
		default:
			out, in := s[start-1], hi
			prev := mean
			mean += (in - out) / float64(size)
			// Exchanging out for in at fixed size changes Σ(x−mean)² by
			// (in−out)·(in−mean' + out−mean).
			m2 += (in - out) * (in - mean + out - prev)
			if m2 < 0 {
				m2 = 0
			}
		}
		if m2 < bestM2 {
			best, bestM2 = start, m2
		}
	}

	return Window{
		Lower: s[best],
		Upper: s[best+size-1],
		Start: best,
		Size:  size,
	}, nil
}

// Huge is the magnitude beyond which a sample no longer enters the running
// sums.
const Huge = 1e150

func huge(x float64) bool { return math.Abs(x) > Huge }

// hugeSpread is the spread of a sorted window with extremes lo and hi, one of
// which is huge.
func hugeSpread(lo, hi float64) float64 {
	if lo == hi {
		return 0
	}
	return math.Inf(1)
}

// moments returns the mean and the sum of squared deviations of w.
func moments(w []float64) (mean, m2 float64) {
	for _, x := range w {
		mean += x
	}
	mean /= float64(len(w))
	for _, x := range w {
		d := x - mean
		m2 += d * d
	}
	return mean, m2
}
