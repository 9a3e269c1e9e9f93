package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point styles individual points. Nil funcs use the fixed values.
type Point struct {
	Color     color.Color
	Radius    vg.Length
	ColorFunc func(i int) color.Color
	SizeFunc  func(i int) vg.Length
}

// Plotter builds a scatter of x against y.
func (p Point) Plotter(x, y []float64) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	if p.Color != nil {
		s.GlyphStyle.Color = p.Color
	}
	if p.Radius > 0 {
		s.GlyphStyle.Radius = p.Radius
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	if p.ColorFunc == nil && p.SizeFunc == nil {
		return s, nil
	}

	base := s.GlyphStyle
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		g := base
		if p.ColorFunc != nil {
			g.Color = p.ColorFunc(i)
		}
		if p.SizeFunc != nil {
			g.Radius = p.SizeFunc(i)
		}
		return g
	}
	return s, nil
}

// AreaRadius converts a marker area in square points into a glyph radius.
func AreaRadius(area float64) vg.Length {
	if area <= 0 {
		return 0
	}
	return vg.Points(math.Sqrt(area / math.Pi))
}

// Swatch is a legend thumbnail of a single circle.
type Swatch struct {
	Color  color.Color
	Radius vg.Length
}

// Thumbnail implements plot.Thumbnailer.
func (s Swatch) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(draw.GlyphStyle{Color: s.Color, Radius: s.Radius, Shape: draw.CircleGlyph{}}, c.Center())
}
