package stat

import (
	"math"
	"sort"
)

// Sorted returns a sorted copy of xs.
func Sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// Quantile returns the p-quantile of the already sorted sample.
// Fractional ranks h = (n-1)*p are resolved by linear interpolation
// between the two neighbouring order statistics.
// Quantile panics on an empty sample.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		panic("stat: quantile of empty sample")
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// IQR is the interquartile range Q(0.75) - Q(0.25) of xs.
func IQR(xs []float64) float64 {
	s := Sorted(xs)
	return Quantile(s, 0.75) - Quantile(s, 0.25)
}

// Median of xs.
func Median(xs []float64) float64 {
	return Quantile(Sorted(xs), 0.5)
}

// Bounds returns the minimum and maximum of xs. Both are NaN for an
// empty slice.
func Bounds(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		} else if x > max {
			max = x
		}
	}
	return min, max
}
