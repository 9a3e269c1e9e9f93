package stat

// BoxPlotData holds the components of a box and whisker plot.
type BoxPlotData struct {
	Min, Max     float64
	Q1, Q3       float64
	Median       float64
	Lower, Upper float64 // whisker ends
	Outliers     []int   // indices into the sample
}

// BoxPlot calculates components of a box and whisker plot. The whiskers
// reach the most extreme values within coef*IQR of the box; everything
// beyond is an outlier. BoxPlot panics on an empty sample.
func BoxPlot(xs []float64, coef float64) (b BoxPlotData) {
	d := Sorted(xs)
	n := len(d)
	if n == 0 {
		panic("stat: box plot of empty sample")
	}

	b.Min, b.Max = d[0], d[n-1]
	b.Q1, b.Median, b.Q3 = Quantile(d, 0.25), Quantile(d, 0.5), Quantile(d, 0.75)

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-coef*iqr, b.Q3+coef*iqr
	b.Lower, b.Upper = b.Max, b.Min

	for i, y := range xs {
		if y >= lo && y < b.Lower {
			b.Lower = y
		}
		if y <= hi && y > b.Upper {
			b.Upper = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, i)
		}
	}
	return b
}
