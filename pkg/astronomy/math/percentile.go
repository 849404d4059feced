package math

import (
	"math"
	"slices"
)

// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between the closest order statistics: the rank is
// h = (n-1)*p/100 and the result is x[floor(h)] + (h-floor(h))*(x[ceil(h)]-x[floor(h)]).
// values is not modified. It returns NaN for an empty input.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return PercentileSorted(sorted, p)
}

// PercentileSorted is Percentile for input that is already sorted ascending.
func PercentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[n-1]
	}

	h := float64(n-1) * p / 100
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Median returns the 50th percentile, averaging the two middle values for even n.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Between reports whether lo <= x <= hi.
func Between(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}
