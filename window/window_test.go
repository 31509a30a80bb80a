package window_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/meshseg/window"
)

func TestDensest_OutlierIgnored(t *testing.T) {
	w, err := window.Densest([]float64{1, 2, 3, 4, 5, 100}, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1.0, w.Lower)
	require.Equal(t, 3.0, w.Upper)
	require.Equal(t, 0, w.Start)
	require.Equal(t, 3, w.Size)
}

func TestDensest_DoesNotMutateInput(t *testing.T) {
	in := []float64{5, 1, 4, 2, 3}
	before := append([]float64(nil), in...)
	_, err := window.Densest(in, 0.6)
	require.NoError(t, err)
	if d := cmp.Diff(before, in); d != "" {
		t.Fatalf("input mutated (-want +got):\n%s", d)
	}
}

func TestDensest_InvalidArgument(t *testing.T) {
	cases := []struct {
		name     string
		samples  []float64
		fraction float64
	}{
		{"empty", nil, 0.5},
		{"window rounds to zero", []float64{1, 2, 3}, 0.2},
		{"zero fraction", []float64{1, 2}, 0},
		{"negative fraction", []float64{1, 2}, -0.5},
		{"fraction above one", []float64{1, 2}, 1.5},
		{"NaN fraction", []float64{1, 2}, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := window.Densest(tc.samples, tc.fraction)
			require.ErrorIs(t, err, window.ErrInvalidArgument)
		})
	}
}

func TestDensest_FullWindowSpansEverything(t *testing.T) {
	w, err := window.Densest([]float64{3, -1, 8}, 1)
	require.NoError(t, err)
	require.Equal(t, -1.0, w.Lower)
	require.Equal(t, 8.0, w.Upper)
}

func TestDensest_EarliestTieWins(t *testing.T) {
	// Every window of two has spread 1; the lowest one is chosen.
	w, err := window.Densest([]float64{0, 1, 2, 3}, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0.0, w.Lower)
	require.Equal(t, 1.0, w.Upper)
}

func TestDensest_HugeSamples(t *testing.T) {
	top := math.MaxFloat64
	cases := []struct {
		name         string
		samples      []float64
		fraction     float64
		lower, upper float64
		start        int
	}{
		{"equal huge run beats finite spread", []float64{1, 2, 3, top, top, top}, 0.5, top, top, 3},
		{"earlier zero spread keeps the tie", []float64{4, 4, 4, top, top, top}, 0.5, 4, 4, 0},
		{"all samples huge", []float64{top, top, top, top}, 0.5, top, top, 0},
		{"finite window after a huge negative run", []float64{-top, -top, 1, 2, 3, 50}, 0.5, 1, 3, 2},
		{"every window mixed", []float64{1, 5, top}, 1, 1, top, 0},
		{"infinities saturate", []float64{math.Inf(-1), 0, 1, math.Inf(1)}, 0.5, 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := window.Densest(tc.samples, tc.fraction)
			require.NoError(t, err)
			require.Equal(t, tc.lower, w.Lower)
			require.Equal(t, tc.upper, w.Upper)
			require.Equal(t, tc.start, w.Start)
		})
	}
}

// bruteForce returns the minimal window variance by recomputing every window.
func bruteForce(samples []float64, size int) float64 {
	s := append([]float64(nil), samples...)
	sort.Float64s(s)
	best := math.Inf(1)
	for i := 0; i+size <= len(s); i++ {
		if v := stat.PopVariance(s[i:i+size], nil); v < best {
			best = v
		}
	}
	return best
}

func TestDensest_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 5 + rng.Intn(200)
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = rng.NormFloat64() * 3
			if rng.Intn(10) == 0 {
				samples[i] += 50 * rng.Float64()
			}
		}
		fraction := 0.1 + 0.9*rng.Float64()
		w, err := window.Densest(samples, fraction)
		require.NoError(t, err)

		size := window.Size(n, fraction)
		sorted := append([]float64(nil), samples...)
		sort.Float64s(sorted)
		got := stat.PopVariance(sorted[w.Start:w.Start+w.Size], nil)
		require.InDelta(t, bruteForce(samples, size), got, 1e-9, "trial %d", trial)
		require.True(t, w.Lower <= w.Upper)
	}
}

func TestWindow_Contains(t *testing.T) {
	w := window.Window{Lower: 1, Upper: 2}
	require.True(t, w.Contains(1))
	require.True(t, w.Contains(2))
	require.False(t, w.Contains(2.5))
}

func ExampleDensest() {
	w, _ := window.Densest([]float64{1, 2, 3, 4, 5, 100}, 0.5)
	fmt.Println(w.Lower, w.Upper)
	// Output: 1 3
}

func BenchmarkDensest(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	samples := make([]float64, 100_000)
	for i := range samples {
		samples[i] = rng.ExpFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = window.Densest(samples, 0.9)
	}
}
