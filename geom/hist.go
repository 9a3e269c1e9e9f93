package geom

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/stat"
)

// Hist draws precomputed bins as a histogram of counts.
func Hist(bins []stat.BinnedData, fill color.Color) *plotter.Histogram {
	if len(bins) == 0 {
		return nil
	}
	hb := make([]plotter.HistogramBin, len(bins))
	for i, b := range bins {
		hb[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	h := &plotter.Histogram{
		Bins:      hb,
		Width:     bins[0].Max - bins[0].Min,
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Width = vg.Points(0.5)
	return h
}

// DensityLine draws a density curve multiplied by scale. Scaling by
// n*binwidth puts a density on the count axis of a histogram.
func DensityLine(curve []stat.Point, scale float64, c color.Color) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(curve))
	for i, p := range curve {
		xys[i].X = p.X
		xys[i].Y = p.Y * scale
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1.5)
	return l, nil
}
