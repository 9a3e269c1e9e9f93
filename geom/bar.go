package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Series is one set of bar heights, one value per x position.
type Series struct {
	Name   string
	Values []float64
	Color  color.Color

	// Colors overrides Color per bar if non-empty.
	Colors []color.Color
}

// Bars builds one bar chart per series. The bars for x position i are
// centred around i; several series are dodged side by side, sharing
// the total width.
func Bars(series []Series, width vg.Length) ([]*plotter.BarChart, error) {
	if len(series) == 0 {
		return nil, nil
	}
	n := vg.Length(len(series))
	w := width / n
	charts := make([]*plotter.BarChart, 0, len(series))
	for i, s := range series {
		if len(s.Colors) > 0 && len(s.Colors) != len(s.Values) {
			return nil, fmt.Errorf("geom: series %q has %d values but %d colors",
				s.Name, len(s.Values), len(s.Colors))
		}
		if len(s.Colors) > 0 {
			// One chart per bar so that every bar gets its own colour.
			for j, v := range s.Values {
				values := make(plotter.Values, len(s.Values))
				values[j] = v
				b, err := plotter.NewBarChart(values, w)
				if err != nil {
					return nil, err
				}
				b.Color = s.Colors[j]
				b.LineStyle.Width = 0
				b.Offset = dodge(i, len(series), w)
				charts = append(charts, b)
			}
			continue
		}
		b, err := plotter.NewBarChart(plotter.Values(s.Values), w)
		if err != nil {
			return nil, err
		}
		b.Color = s.Color
		b.LineStyle.Width = 0
		b.Offset = dodge(i, len(series), w)
		charts = append(charts, b)
	}
	return charts, nil
}

// dodge is the offset of the i'th of n bars of width w so that the group
// is centred on its x position.
func dodge(i, n int, w vg.Length) vg.Length {
	return (vg.Length(2*i) - vg.Length(n-1)) * w / 2
}

// ValueLabels annotates the tops of the bars of s, formatted with
// format (e.g. "%.2f"). Zero height bars are not labelled.
func ValueLabels(s Series, index, count int, width vg.Length, format string) (*plotter.Labels, error) {
	xys := make(plotter.XYs, 0, len(s.Values))
	labels := make([]string, 0, len(s.Values))
	for i, v := range s.Values {
		if v == 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
		labels = append(labels, fmt.Sprintf(format, v))
	}
	if len(xys) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	w := width / vg.Length(count)
	l.Offset = vg.Point{X: dodge(index, count, w), Y: vg.Points(4)}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
	}
	return l, nil
}
