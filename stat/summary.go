package stat

import (
	"fmt"
	"strings"

	gonumstat "gonum.org/v1/gonum/stat"
)

// Measure selects the central tendency used to summarise a group.
type Measure int

const (
	MeasureMean Measure = iota
	MeasureMedian
)

func (m Measure) String() string {
	switch m {
	case MeasureMean:
		return "mean"
	case MeasureMedian:
		return "median"
	}
	return fmt.Sprintf("Measure(%d)", int(m))
}

// ParseMeasure parses "mean" or "median" (case insensitive).
// The empty string is the mean.
func ParseMeasure(s string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mean":
		return MeasureMean, nil
	case "median":
		return MeasureMedian, nil
	}
	return MeasureMean, fmt.Errorf("stat: unknown measure %q", s)
}

// Aggregate summarises xs by m.
func Aggregate(xs []float64, m Measure) float64 {
	if m == MeasureMedian {
		return Median(xs)
	}
	return Mean(xs)
}

// Mean is the arithmetic mean of xs.
func Mean(xs []float64) float64 { return gonumstat.Mean(xs, nil) }

// StdDev is the sample (n-1) standard deviation of xs.
func StdDev(xs []float64) float64 { return gonumstat.StdDev(xs, nil) }

// Correlation is Pearson's correlation coefficient of x and y.
func Correlation(x, y []float64) float64 {
	return gonumstat.Correlation(x, y, nil)
}
