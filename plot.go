package eda

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is one rendered chart: a grid of panels, each a gonum plot.
type Figure struct {
	// Name identifies the figure, e.g. "boxplots" or
	// "relationship-origin-smoker-group-2".
	Name string

	Width, Height vg.Length

	// Panels[row][col]. A nil panel is a hidden cell.
	Panels [][]*plot.Plot
}

// Rows is the number of panel rows.
func (f *Figure) Rows() int { return len(f.Panels) }

// Cols is the number of panel columns.
func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

// Plots returns the visible panels in row-major order.
func (f *Figure) Plots() []*plot.Plot {
	var plots []*plot.Plot
	for _, row := range f.Panels {
		for _, p := range row {
			if p != nil {
				plots = append(plots, p)
			}
		}
	}
	return plots
}

// Draw draws all visible panels of f onto c.
func (f *Figure) Draw(c draw.Canvas) {
	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(6),
		PadX:      vg.Points(12),
		PadY:      vg.Points(12),
	}
	for r, row := range f.Panels {
		for col, p := range row {
			if p == nil {
				continue
			}
			p.Draw(tiles.At(c, col, r))
		}
	}
}

// WriteTo renders f as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.New(f.Width, f.Height)
	f.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// gridShape is the number of rows needed for n panels in cols columns.
func gridShape(n, cols int) int {
	return (n + cols - 1) / cols
}

// newGrid allocates an empty rows x cols panel grid.
func newGrid(rows, cols int) [][]*plot.Plot {
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
	}
	return grid
}

// place puts the i'th panel into a grid filled row by row.
func place(grid [][]*plot.Plot, i int, p *plot.Plot) {
	cols := len(grid[0])
	grid[i/cols][i%cols] = p
}
