package stat

import (
	"math"
)

// BinOptions control Bin. A zero BinWidth uses Bins equal-width bins
// spanning the data; if both are zero 30 bins are used.
type BinOptions struct {
	Bins     int
	BinWidth float64
	Origin   *float64 // left edge of the first bin when BinWidth is set
	Drop     bool     // drop empty bins
}

// BinnedData is one bin of a histogram.
type BinnedData struct {
	X        float64 // bin center
	Min, Max float64 // bin edges
	Count    int64
	Density  float64
	NCount   float64
	NDensity float64
}

// Bin groups xs into bins and counts occurrences in these bins.
// A nil options will use the default options.
func Bin(xs []float64, options *BinOptions) []BinnedData {
	if len(xs) == 0 {
		return nil
	}
	var opts BinOptions
	if options != nil {
		opts = *options
	}

	min, max := Bounds(xs)
	if min == max {
		min -= 0.5
		max += 0.5
	}

	var origin, binWidth float64
	var numBins int
	if opts.BinWidth > 0 {
		binWidth = opts.BinWidth
		if opts.Origin != nil {
			origin = *opts.Origin
		} else {
			origin = math.Floor(min/binWidth) * binWidth
		}
		numBins = int(math.Floor((max-origin)/binWidth)) + 1
	} else {
		numBins = opts.Bins
		if numBins <= 0 {
			numBins = 30
		}
		origin = min
		binWidth = (max - min) / float64(numBins)
	}

	counts := make([]int64, numBins)
	maxCount := int64(0)
	for _, x := range xs {
		bin := int((x - origin) / binWidth)
		if bin >= numBins {
			bin = numBins - 1 // the last bin is closed
		}
		if bin < 0 {
			continue
		}
		counts[bin]++
		if counts[bin] > maxCount {
			maxCount = counts[bin]
		}
	}

	result := make([]BinnedData, 0, numBins)
	maxDensity := 0.0
	for bin, count := range counts {
		if count == 0 && opts.Drop {
			continue
		}
		lo := origin + float64(bin)*binWidth
		density := float64(count) / binWidth / float64(len(xs))
		if density > maxDensity {
			maxDensity = density
		}
		result = append(result, BinnedData{
			X:       lo + binWidth/2,
			Min:     lo,
			Max:     lo + binWidth,
			Count:   count,
			Density: density,
			NCount:  float64(count) / float64(maxCount),
		})
	}
	for i := range result {
		result[i].NDensity = result[i].Density / maxDensity
	}
	return result
}

// AutoBins chooses a bin count for xs: the smaller of the Sturges and
// Freedman-Diaconis bin widths wins. Samples without spread get one bin.
func AutoBins(xs []float64) int {
	n := len(xs)
	if n == 0 {
		return 1
	}
	min, max := Bounds(xs)
	span := max - min
	if span == 0 {
		return 1
	}
	width := span / (math.Log2(float64(n)) + 1)
	if iqr := IQR(xs); iqr > 0 {
		if fd := 2 * iqr / math.Cbrt(float64(n)); fd < width {
			width = fd
		}
	}
	return int(math.Ceil(span / width))
}
