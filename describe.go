package eda

import (
	"fmt"

	"github.com/vdobler/eda/stat"
)

// IQR returns the interquartile range of the numeric column col.
// Quartiles interpolate linearly between order statistics.
func IQR(ds *Dataset, col string) (float64, error) {
	xs, err := ds.Numbers(col)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmpty, col)
	}
	return stat.IQR(xs), nil
}

// Variation describes the spread of one numeric column.
type Variation struct {
	Name string
	Std  float64 // sample standard deviation
	Mean float64
	CV   float64 // Std / Mean
}

// Variability computes the coefficient of variation of every numeric
// column of ds. Non-numeric columns are not reported. The CV of a column
// with zero mean is not finite (±Inf or NaN).
func Variability(ds *Dataset) ([]Variation, error) {
	var result []Variation
	for _, c := range ds.columns {
		if !c.Kind.Numeric() {
			continue
		}
		xs, err := c.Numbers()
		if err != nil {
			return nil, err
		}
		v := Variation{Name: c.Name, Std: stat.StdDev(xs), Mean: stat.Mean(xs)}
		v.CV = v.Std / v.Mean
		result = append(result, v)
	}
	return result, nil
}

// CoefficientOfVariation returns std/mean of the numeric column col.
// A zero mean is reported as ErrZeroMean.
func CoefficientOfVariation(ds *Dataset, col string) (float64, error) {
	xs, err := ds.Numbers(col)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmpty, col)
	}
	mean := stat.Mean(xs)
	if mean == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroMean, col)
	}
	return stat.StdDev(xs) / mean, nil
}
