package eda

import (
	"fmt"

	"github.com/vdobler/eda/stat"
)

// DefaultGroupSize is the number of category levels shown in one figure
// before a chart is split into several.
const DefaultGroupSize = 5

// DistributionOptions control CategoricalDistribution.
type DistributionOptions struct {
	Relative   bool // plot relative instead of absolute frequencies
	ShowValues bool // annotate each bar with its height
}

// RelationshipOptions control CategoricalRelationship.
type RelationshipOptions struct {
	Relative   bool
	ShowValues bool
	GroupSize  int // 0 means DefaultGroupSize
}

// AggregateOptions control CategoricalNumericalRelationship.
type AggregateOptions struct {
	ShowValues bool
	Measure    stat.Measure
	GroupSize  int // 0 means DefaultGroupSize
}

// ScatterOptions control ScatterWithCorrelation.
type ScatterOptions struct {
	// PointSize is the marker area in square points; 0 means 50.
	PointSize       float64
	ShowCorrelation bool
}

// ControlOptions control ScatterWithControls.
type ControlOptions struct {
	// Color names an optional hue column.
	Color string

	// Size is nil for the default marker size.
	Size SizeSpec

	// Scale multiplies the values of a FromColumn size; 0 means 1.
	Scale float64

	// Legend lists the levels of a categorical color column, or a few
	// sampled values of a numeric color column and of a size column.
	Legend bool
}

// SizeSpec determines marker sizes. It is either FixedSize or FromColumn.
type SizeSpec interface {
	isSizeSpec()
}

// FixedSize is a constant marker area in square points.
type FixedSize float64

// FromColumn sizes markers by the values of the named numeric column.
type FromColumn string

func (FixedSize) isSizeSpec()  {}
func (FromColumn) isSizeSpec() {}

// Bins determines the number of histogram bins. It is either AutoBins
// or FixedBins.
type Bins interface {
	count(xs []float64) int
}

// AutoBins derives the bin count from the data.
type AutoBins struct{}

// FixedBins is a fixed number of bins.
type FixedBins int

func (AutoBins) count(xs []float64) int { return stat.AutoBins(xs) }

func (b FixedBins) count([]float64) int {
	if b <= 0 {
		return 1
	}
	return int(b)
}

func (b FixedBins) String() string { return fmt.Sprintf("%d bins", int(b)) }

func groupSize(n int) int {
	if n <= 0 {
		return DefaultGroupSize
	}
	return n
}
