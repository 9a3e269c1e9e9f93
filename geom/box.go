package geom

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/stat"
)

// Box is a box and whisker plot of values at location loc.
type Box struct {
	Width      vg.Length
	Fill       color.Color
	Coef       float64 // whisker length in IQRs; 0 means 1.5
	Horizontal bool
}

// Plotter builds the box plot. Quartiles use linear interpolation and the
// whiskers end at the most extreme values within Coef*IQR of the box.
func (b Box) Plotter(values []float64, loc float64) (*plotter.BoxPlot, error) {
	width := b.Width
	if width == 0 {
		width = vg.Points(20)
	}
	coef := b.Coef
	if coef == 0 {
		coef = 1.5
	}

	box, err := plotter.NewBoxPlot(width, loc, plotter.Values(values))
	if err != nil {
		return nil, err
	}

	d := stat.BoxPlot(values, coef)
	box.Median = d.Median
	box.Quartile1, box.Quartile3 = d.Q1, d.Q3
	box.AdjLow, box.AdjHigh = d.Lower, d.Upper
	box.Min, box.Max = d.Min, d.Max
	box.Outside = d.Outliers
	box.FillColor = b.Fill
	box.Horizontal = b.Horizontal
	return box, nil
}
