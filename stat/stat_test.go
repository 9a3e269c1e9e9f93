package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneToTen = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

func TestQuantileLinearInterpolation(t *testing.T) {
	s := Sorted(oneToTen)
	assert.InDelta(t, 3.25, Quantile(s, 0.25), 1e-12)
	assert.InDelta(t, 5.5, Quantile(s, 0.5), 1e-12)
	assert.InDelta(t, 7.75, Quantile(s, 0.75), 1e-12)
	assert.Equal(t, 1.0, Quantile(s, 0))
	assert.Equal(t, 10.0, Quantile(s, 1))
	assert.Equal(t, 42.0, Quantile([]float64{42}, 0.3))
}

func TestIQR(t *testing.T) {
	assert.InDelta(t, 4.5, IQR(oneToTen), 1e-12)

	// Order of the input does not matter.
	assert.InDelta(t, 4.5, IQR([]float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}), 1e-12)
}

func TestQuantileEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Quantile(nil, 0.5) })
}

func TestSortedDoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}
	out := Sorted(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
	assert.Equal(t, []float64{1, 2, 3}, out)
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		in   string
		want Measure
		err  bool
	}{
		{"", MeasureMean, false},
		{"mean", MeasureMean, false},
		{"Median", MeasureMedian, false},
		{" median ", MeasureMedian, false},
		{"mode", MeasureMean, true},
	}
	for _, tc := range tests {
		got, err := ParseMeasure(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	xs := []float64{1, 2, 3, 100}
	assert.InDelta(t, 26.5, Aggregate(xs, MeasureMean), 1e-12)
	assert.InDelta(t, 2.5, Aggregate(xs, MeasureMedian), 1e-12)
	assert.Equal(t, "median", MeasureMedian.String())
}

func TestMeanStdDev(t *testing.T) {
	assert.InDelta(t, 5.5, Mean(oneToTen), 1e-12)
	// Sample standard deviation of 1..10.
	assert.InDelta(t, 3.0276503540974917, StdDev(oneToTen), 1e-12)
}

func TestCorrelation(t *testing.T) {
	y := make([]float64, len(oneToTen))
	z := make([]float64, len(oneToTen))
	for i, x := range oneToTen {
		y[i] = 2*x + 1
		z[i] = -x
	}
	assert.InDelta(t, 1, Correlation(oneToTen, y), 1e-12)
	assert.InDelta(t, -1, Correlation(oneToTen, z), 1e-12)
}

func TestBinFixedCount(t *testing.T) {
	bins := Bin(oneToTen, &BinOptions{Bins: 3})
	require.Len(t, bins, 3)
	assert.Equal(t, []int64{3, 3, 4}, []int64{bins[0].Count, bins[1].Count, bins[2].Count})
	assert.InDelta(t, 1, bins[0].Min, 1e-12)
	assert.InDelta(t, 10, bins[2].Max, 1e-12)
	assert.InDelta(t, 1, bins[2].NCount, 1e-12)
	assert.InDelta(t, 1, bins[2].NDensity, 1e-12)

	// Densities integrate to one.
	area := 0.0
	for _, b := range bins {
		area += b.Density * (b.Max - b.Min)
	}
	assert.InDelta(t, 1, area, 1e-12)
}

func TestBinWidthAndDrop(t *testing.T) {
	xs := []float64{0.5, 1.5, 1.7, 5.2}
	bins := Bin(xs, &BinOptions{BinWidth: 1})
	require.Len(t, bins, 6)
	assert.Equal(t, int64(2), bins[1].Count)

	dropped := Bin(xs, &BinOptions{BinWidth: 1, Drop: true})
	require.Len(t, dropped, 3)
	assert.InDelta(t, 5.5, dropped[2].X, 1e-12)
}

func TestBinDegenerate(t *testing.T) {
	assert.Nil(t, Bin(nil, nil))

	bins := Bin([]float64{7, 7, 7}, &BinOptions{Bins: 2})
	require.Len(t, bins, 2)
	assert.Equal(t, int64(3), bins[0].Count+bins[1].Count)
}

func TestAutoBins(t *testing.T) {
	assert.Equal(t, 5, AutoBins(oneToTen))
	assert.Equal(t, 1, AutoBins([]float64{3, 3, 3}))
	assert.Equal(t, 1, AutoBins(nil))
}

func TestBoxPlot(t *testing.T) {
	xs := append(append([]float64{}, oneToTen...), 100)
	b := BoxPlot(xs, 1.5)
	assert.InDelta(t, 3.5, b.Q1, 1e-12)
	assert.InDelta(t, 6, b.Median, 1e-12)
	assert.InDelta(t, 8.5, b.Q3, 1e-12)
	assert.Equal(t, 1.0, b.Lower)
	assert.Equal(t, 10.0, b.Upper)
	assert.Equal(t, 100.0, b.Max)
	assert.Equal(t, []int{10}, b.Outliers)

	// A wide whisker swallows the outlier.
	wide := BoxPlot(xs, 50)
	assert.Empty(t, wide.Outliers)
	assert.Equal(t, 100.0, wide.Upper)
}

func TestDensity(t *testing.T) {
	curve := Density(oneToTen, 50)
	require.Len(t, curve, 50)
	assert.Equal(t, 1.0, curve[0].X)
	assert.InDelta(t, 10.0, curve[49].X, 1e-12)
	for _, p := range curve {
		assert.True(t, p.Y > 0 && !math.IsInf(p.Y, 0))
	}

	assert.Nil(t, Density([]float64{1}, 50))
	assert.Nil(t, Density([]float64{2, 2, 2}, 50))
}
