package curvature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Kind selects which scalar of a Sample feeds the segmentation energy.
type Kind int

const (
	// KindGaussian uses the Gaussian curvature (angle deficit).
	KindGaussian Kind = iota

	// KindMean uses the signed mean curvature; convex creases are positive.
	KindMean

	// KindAbsMean uses |H|, treating convex and concave creases alike.
	KindAbsMean

	// KindMaxAbsPrincipal uses max(|k1|, |k2|).
	KindMaxAbsPrincipal
)

// String returns the configuration token of k.
func (k Kind) String() string {
	switch k {
	case KindGaussian:
		return "gaussian"
	case KindMean:
		return "mean"
	case KindAbsMean:
		return "absmean"
	case KindMaxAbsPrincipal:
		return "principal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration token back to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindGaussian, KindMean, KindAbsMean, KindMaxAbsPrincipal} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("curvature: unknown kind %q", s)
}

// Select extracts the scalar chosen by kind from every sample. Undefined
// samples stay Undefined whatever the kind, so downstream code has a single
// sentinel to check.
func Select(samples []Sample, kind Kind) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		if !s.Defined() {
			out[i] = Undefined
			continue
		}
		switch kind {
		case KindMean:
			out[i] = s.Mean
		case KindAbsMean:
			out[i] = math.Abs(s.Mean)
		case KindMaxAbsPrincipal:
			k1, k2, _ := Principal(s)
			out[i] = math.Max(math.Abs(k1), math.Abs(k2))
		default:
			out[i] = s.Gaussian
		}
	}
	return out
}

// Summary describes the distribution of a curvature scalar over the defined
// vertices.
type Summary struct {
	Count     int
	Undefined int
	Min, Max  float64
	Mean      float64
	StdDev    float64
}

// Summarize computes a Summary of values, skipping Undefined entries.
// With no defined values every statistic is zero.
func Summarize(values []float64) Summary {
	defined := make([]float64, 0, len(values))
	var s Summary
	for _, v := range values {
		if v == Undefined {
			s.Undefined++
			continue
		}
		defined = append(defined, v)
	}
	s.Count = len(defined)
	if s.Count == 0 {
		return s
	}
	s.Min, s.Max = defined[0], defined[0]
	for _, v := range defined[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	if s.Count == 1 {
		s.Mean = defined[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(defined, nil)
	return s
}
