package eda

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/geom"
	"github.com/vdobler/eda/stat"
)

var barWidth = vg.Points(40)

const (
	densityPoints = 200
	defaultArea   = 50.0
	minArea       = 100.0
	maxArea       = 1000.0
	bubbleScale   = 1000.0
	legendSamples = 4
)

// Charter draws the charts of an exploratory analysis and hands every
// finished figure to Sink. The zero value renders into Discard with
// DefaultTheme and the default logger; zero fields of Theme fall back to
// DefaultTheme.
type Charter struct {
	Sink   Sink
	Theme  Theme
	Logger *slog.Logger
}

// NewCharter returns a Charter rendering into sink.
func NewCharter(sink Sink) *Charter {
	return &Charter{Sink: sink, Theme: DefaultTheme, Logger: slog.Default()}
}

// theme is c.Theme with unset fields taken from DefaultTheme.
func (c *Charter) theme() Theme {
	return c.Theme.withDefaults()
}

func (c *Charter) log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Charter) render(fig *Figure) error {
	sink := c.Sink
	if sink == nil {
		sink = Discard
	}
	c.log().Debug("rendering figure", "figure", fig.Name, "panels", len(fig.Plots()))
	if err := sink.Render(fig); err != nil {
		return fmt.Errorf("eda: rendering %s: %w", fig.Name, err)
	}
	return nil
}

// gridFigure wraps a grid of panels sized by the theme's panel size.
func (c *Charter) gridFigure(name string, grid [][]*plot.Plot) *Figure {
	w, h := c.theme().panelSize()
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	return &Figure{
		Name:   name,
		Width:  vg.Length(cols) * w,
		Height: vg.Length(len(grid)) * h,
		Panels: grid,
	}
}

// singleFigure wraps one stand-alone panel.
func (c *Charter) singleFigure(name string, p *plot.Plot) *Figure {
	w, h := c.theme().figureSize()
	return &Figure{Name: name, Width: w, Height: h, Panels: [][]*plot.Plot{{p}}}
}

// numbers returns the values of the named column. Non-numeric columns
// are reported with ok == false and logged; unknown columns are errors.
func (c *Charter) numbers(ds *Dataset, name, chart string) (xs []float64, ok bool, err error) {
	col, err := ds.Column(name)
	if err != nil {
		return nil, false, err
	}
	if !col.Kind.Numeric() {
		c.log().Debug("skipping non-numeric column", "chart", chart, "column", name, "type", col.Kind.String())
		return nil, false, nil
	}
	xs, _ = col.Numbers()
	if len(xs) == 0 {
		c.log().Debug("skipping empty column", "chart", chart, "column", name)
		return nil, false, nil
	}
	return xs, true, nil
}

// ----------------------------------------------------------------------------
// Distributions of single variables

// CategoricalDistribution draws the frequencies of the levels of each of
// the given columns as bars, ordered by descending count, in a grid of
// two columns.
func (c *Charter) CategoricalDistribution(ds *Dataset, columns []string, opts DistributionOptions) error {
	if len(columns) == 0 {
		return nil
	}
	th := c.theme()
	grid := newGrid(gridShape(len(columns), 2), 2)
	ylabel := "Count"
	if opts.Relative {
		ylabel = "Relative frequency"
	}
	for i, name := range columns {
		col, err := ds.Column(name)
		if err != nil {
			return err
		}
		levels, counts := valueCounts(col)
		if opts.Relative {
			total := 0.0
			for _, n := range counts {
				total += n
			}
			for j := range counts {
				counts[j] /= total
			}
		}

		p := newPanel("Distribution of "+name, name, ylabel)
		series := []geom.Series{{Name: name, Values: counts, Colors: th.barPalette(len(counts))}}
		if err := addBars(p, series, opts.ShowValues, false); err != nil {
			return err
		}
		p.NominalX(levels...)
		rotateX(p)
		place(grid, i, p)
	}
	return c.render(c.gridFigure("distribution", grid))
}

// Boxplots draws a horizontal box plot of each numeric column in a grid
// with gridCols columns (0 means 2). Other columns are skipped.
func (c *Charter) Boxplots(ds *Dataset, columns []string, gridCols int) error {
	if len(columns) == 0 {
		return nil
	}
	if gridCols <= 0 {
		gridCols = 2
	}
	th := c.theme()
	grid := newGrid(gridShape(len(columns), gridCols), gridCols)
	for i, name := range columns {
		xs, ok, err := c.numbers(ds, name, "boxplots")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		p, err := c.boxPanel(name, xs, 0, th)
		if err != nil {
			return err
		}
		place(grid, i, p)
	}
	return c.render(c.gridFigure("boxplots", grid))
}

// HistogramsWithDensity draws a histogram with a kernel density estimate
// of each numeric column in a grid of two columns.
func (c *Charter) HistogramsWithDensity(ds *Dataset, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	th := c.theme()
	grid := newGrid(gridShape(len(columns), 2), 2)
	for i, name := range columns {
		xs, ok, err := c.numbers(ds, name, "histograms")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		p := newPanel("Histogram and KDE of "+name, name, "Count")
		if _, err := histogram(p, xs, th.Bins, th.color(th.HistColor), th.color(th.DensityColor)); err != nil {
			return err
		}
		place(grid, i, p)
	}
	return c.render(c.gridFigure("histograms", grid))
}

// CombinedGraphs draws one row per column: a histogram with density on
// the left and a box plot with whiskers of whisker IQRs (0 means 1.5) on
// the right.
func (c *Charter) CombinedGraphs(ds *Dataset, columns []string, whisker float64) error {
	if len(columns) == 0 {
		return nil
	}
	th := c.theme()
	grid := newGrid(len(columns), 2)
	for i, name := range columns {
		xs, ok, err := c.numbers(ds, name, "combined")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		hp := newPanel("Histogram and KDE of "+name, name, "Count")
		if _, err := histogram(hp, xs, th.Bins, th.color(th.HistColor), th.color(th.DensityColor)); err != nil {
			return err
		}
		bp, err := c.boxPanel(name, xs, whisker, th)
		if err != nil {
			return err
		}
		grid[i][0], grid[i][1] = hp, bp
	}
	return c.render(c.gridFigure("combined", grid))
}

func (c *Charter) boxPanel(name string, xs []float64, whisker float64, th Theme) (*plot.Plot, error) {
	p := newPanel("Boxplot of "+name, name, "")
	box, err := geom.Box{Fill: th.color(th.BoxColor), Coef: whisker, Horizontal: true}.Plotter(xs, 0)
	if err != nil {
		return nil, err
	}
	p.Add(box)
	p.HideY()
	return p, nil
}

// ----------------------------------------------------------------------------
// Relationships between two variables

// CategoricalRelationship draws the counts of the levels of cat2 within
// each level of cat1 as grouped bars. Relative frequencies are relative
// to the size of the cat1 level. If cat1 has more levels than the group
// size, one figure is drawn per batch of levels.
func (c *Charter) CategoricalRelationship(ds *Dataset, cat1, cat2 string, opts RelationshipOptions) error {
	c1, err := ds.Column(cat1)
	if err != nil {
		return err
	}
	c2, err := ds.Column(cat2)
	if err != nil {
		return err
	}

	levels, tab := crossTabulate(c1, c2)
	hue := c2.SortedLevels()
	ylabel := "Count"
	if opts.Relative {
		ylabel = "Relative frequency"
	}

	draw := func(name, title string, levels []string) error {
		p := newPanel(title, cat1, ylabel)
		series := tab.series(levels, hue, opts.Relative)
		if err := addBars(p, series, opts.ShowValues, true); err != nil {
			return err
		}
		p.NominalX(levels...)
		p.Legend.Top = true
		return c.render(c.singleFigure(name, p))
	}

	name := fmt.Sprintf("relationship-%s-%s", cat1, cat2)
	title := fmt.Sprintf("Relationship between %s and %s", cat1, cat2)
	size := groupSize(opts.GroupSize)
	if len(levels) <= size {
		return draw(name, title, c1.SortedLevels())
	}
	for g, batch := range Batches(levels, size) {
		err := draw(fmt.Sprintf("%s-group-%d", name, g+1), fmt.Sprintf("%s - Group %d", title, g+1), batch)
		if err != nil {
			return err
		}
	}
	return nil
}

// CategoricalNumericalRelationship draws the mean or median of num for
// every level of cat as bars sorted in descending order, in batches of
// the group size.
func (c *Charter) CategoricalNumericalRelationship(ds *Dataset, cat, num string, opts AggregateOptions) error {
	cc, err := ds.Column(cat)
	if err != nil {
		return err
	}
	nc, err := ds.Column(num)
	if err != nil {
		return err
	}
	if !nc.Kind.Numeric() {
		return fmt.Errorf("%w: %q is %s", ErrNotNumeric, num, nc.Kind)
	}

	groups := c.aggregate(cc, nc, opts.Measure)

	measure := cases.Title(language.English).String(opts.Measure.String())
	ylabel := measure + " of " + num
	name := fmt.Sprintf("aggregate-%s-%s", cat, num)
	title := fmt.Sprintf("%s by %s", ylabel, cat)

	draw := func(name, title string, groups []levelValue) error {
		p := newPanel(title, cat, ylabel)
		s := geom.Series{Name: num, Values: make([]float64, len(groups)), Colors: make([]color.Color, len(groups))}
		names := make([]string, len(groups))
		for i, g := range groups {
			names[i] = g.Level
			s.Values[i] = g.Value
			s.Colors[i] = plotutil.Color(i)
		}
		if err := addBars(p, []geom.Series{s}, opts.ShowValues, false); err != nil {
			return err
		}
		p.NominalX(names...)
		rotateX(p)
		return c.render(c.singleFigure(name, p))
	}

	size := groupSize(opts.GroupSize)
	if len(groups) <= size {
		return draw(name, title, groups)
	}
	for g, start := 0, 0; start < len(groups); g, start = g+1, start+size {
		end := start + size
		if end > len(groups) {
			end = len(groups)
		}
		err := draw(fmt.Sprintf("%s-group-%d", name, g+1), fmt.Sprintf("%s - Group %d", title, g+1), groups[start:end])
		if err != nil {
			return err
		}
	}
	return nil
}

// GroupedHistograms overlays the histograms and densities of num for the
// levels of cat, drawing one figure per batch of size levels.
func (c *Charter) GroupedHistograms(ds *Dataset, cat, num string, size int, bins Bins) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrGroupSize, size)
	}
	if bins == nil {
		bins = AutoBins{}
	}
	cc, err := ds.Column(cat)
	if err != nil {
		return err
	}
	nc, err := ds.Column(num)
	if err != nil {
		return err
	}
	if !nc.Kind.Numeric() {
		return fmt.Errorf("%w: %q is %s", ErrNotNumeric, num, nc.Kind)
	}

	levels, rows := cc.Partition()
	for g, batch := range Batches(levels, size) {
		title := fmt.Sprintf("Histograms of %s for %s (Group %d)", num, cat, g+1)
		p := newPanel(title, num, "Frequency")
		for j, level := range batch {
			xs := values(nc, rows[g*size+j])
			if len(xs) == 0 {
				c.log().Debug("skipping level without values", "chart", "grouped histograms", "column", cat, "level", level)
				continue
			}
			col := plotutil.Color(j)
			h, err := histogram(p, xs, bins.count(xs), SetAlpha(col, 0.5), col)
			if err != nil {
				return err
			}
			if h != nil {
				p.Legend.Add(level, h)
			}
		}
		p.Legend.Top = true
		if err := c.render(c.singleFigure(fmt.Sprintf("histograms-%s-%s-group-%d", cat, num, g+1), p)); err != nil {
			return err
		}
	}
	return nil
}

// ScatterWithCorrelation draws y against x. With ShowCorrelation the
// title reports Pearson's correlation coefficient.
func (c *Charter) ScatterWithCorrelation(ds *Dataset, x, y string, opts ScatterOptions) error {
	cols, err := numericColumns(ds, x, y)
	if err != nil {
		return err
	}
	rows := completeRows(cols...)
	xs, ys := values(cols[0], rows), values(cols[1], rows)

	area := opts.PointSize
	if area <= 0 {
		area = defaultArea
	}
	th := c.theme()
	title := fmt.Sprintf("Scatter plot of %s vs %s", y, x)
	if opts.ShowCorrelation {
		title = fmt.Sprintf("%s with correlation: %.2f", title, stat.Correlation(xs, ys))
	}
	p := newPanel(title, x, y)
	p.Add(plotter.NewGrid())
	s, err := geom.Point{Color: th.color(th.PointColor), Radius: geom.AreaRadius(area)}.Plotter(xs, ys)
	if err != nil {
		return err
	}
	p.Add(s)
	return c.render(c.singleFigure(fmt.Sprintf("scatter-%s-%s", x, y), p))
}

// Bubble draws y against x with marker areas (v - min + 1) / scale for
// the values v of the size column. A zero scale means 1000.
func (c *Charter) Bubble(ds *Dataset, x, y, size string, scale float64) error {
	cols, err := numericColumns(ds, x, y, size)
	if err != nil {
		return err
	}
	if scale == 0 {
		scale = bubbleScale
	}
	rows := completeRows(cols...)
	xs, ys, vs := values(cols[0], rows), values(cols[1], rows), values(cols[2], rows)
	radii := make([]vg.Length, len(vs))
	for i, a := range bubbleAreas(vs, scale) {
		radii[i] = geom.AreaRadius(a)
	}

	th := c.theme()
	p := newPanel(fmt.Sprintf("Bubble chart of %s vs %s sized by %s", y, x, size), x, y)
	pt := geom.Point{
		Color:    SetAlpha(th.color(th.PointColor), 0.5),
		SizeFunc: func(i int) vg.Length { return radii[i] },
	}
	s, err := pt.Plotter(xs, ys)
	if err != nil {
		return err
	}
	p.Add(s)
	return c.render(c.singleFigure(fmt.Sprintf("bubble-%s-%s-%s", x, y, size), p))
}

// GroupedBoxplots draws vertical box plots of num for the levels of cat,
// five levels per figure.
func (c *Charter) GroupedBoxplots(ds *Dataset, cat, num string) error {
	cc, err := ds.Column(cat)
	if err != nil {
		return err
	}
	nc, err := ds.Column(num)
	if err != nil {
		return err
	}
	if !nc.Kind.Numeric() {
		return fmt.Errorf("%w: %q is %s", ErrNotNumeric, num, nc.Kind)
	}

	th := c.theme()
	levels, rows := cc.Partition()
	for g, batch := range Batches(levels, DefaultGroupSize) {
		p := newPanel(fmt.Sprintf("Boxplots of %s for %s (Group %d)", num, cat, g+1), cat, num)
		for j, level := range batch {
			xs := values(nc, rows[g*DefaultGroupSize+j])
			if len(xs) == 0 {
				c.log().Debug("skipping level without values", "chart", "grouped boxplots", "column", cat, "level", level)
				continue
			}
			box, err := geom.Box{Fill: th.color(th.BoxColor)}.Plotter(xs, float64(j))
			if err != nil {
				return err
			}
			p.Add(box)
		}
		p.NominalX(batch...)
		rotateX(p)
		if err := c.render(c.singleFigure(fmt.Sprintf("boxplots-%s-%s-group-%d", cat, num, g+1), p)); err != nil {
			return err
		}
	}
	return nil
}

// ScatterWithControls builds a scatter plot of y against x whose marker
// color and size may follow further columns. The plot is returned for
// further composition and is not rendered.
//
// A categorical or boolean color column gets one discrete color per
// level and, with Legend, a legend entry; a numeric one is mapped onto a
// continuous color map. Sizes from a column are scaled into marker areas
// between 100 and 1000 square points.
func (c *Charter) ScatterWithControls(ds *Dataset, x, y string, opts ControlOptions) (*plot.Plot, error) {
	cols, err := numericColumns(ds, x, y)
	if err != nil {
		return nil, err
	}
	radius := geom.AreaRadius(defaultArea)
	var hc, sc *Column
	if opts.Color != "" {
		if hc, err = ds.Column(opts.Color); err != nil {
			return nil, err
		}
		cols = append(cols, hc)
	}
	switch s := opts.Size.(type) {
	case FixedSize:
		radius = geom.AreaRadius(float64(s))
	case FromColumn:
		size, err := numericColumns(ds, string(s))
		if err != nil {
			return nil, err
		}
		sc = size[0]
		cols = append(cols, sc)
	}

	rows := completeRows(cols...)
	xs, ys := values(cols[0], rows), values(cols[1], rows)
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	var radii []vg.Length
	var area *Scale
	if sc != nil {
		vs := values(sc, rows)
		for i := range vs {
			vs[i] *= scale
		}
		area = NewScale()
		area.Train(vs)
		radii = make([]vg.Length, len(vs))
		for i, v := range vs {
			radii[i] = geom.AreaRadius(area.Range(v, minArea, maxArea))
		}
	}

	th := c.theme()
	pointColor := SetAlpha(th.color(th.PointColor), 0.5)
	p := newPanel(fmt.Sprintf("%s vs %s", y, x), x, y)

	var hue *Scale
	if hc == nil || hc.Kind.Numeric() {
		pt := geom.Point{Color: pointColor, Radius: radius}
		if radii != nil {
			pt.SizeFunc = func(i int) vg.Length { return radii[i] }
		}
		if hc != nil {
			hv := values(hc, rows)
			hue = NewScale()
			hue.Train(hv)
			pt.ColorFunc = func(i int) color.Color { return SetAlpha(hue.Color(hv[i]), 0.5) }
		}
		s, err := pt.Plotter(xs, ys)
		if err != nil {
			return nil, err
		}
		p.Add(s)
	} else {
		// One scatter per level of a categorical hue.
		byLevel := make(map[string][]int)
		for i, r := range rows {
			l := hc.Value(r)
			byLevel[l] = append(byLevel[l], i)
		}
		levels := hc.SortedLevels()
		colors := discreteColors(len(levels))
		for j, level := range levels {
			idx := byLevel[level]
			if len(idx) == 0 {
				continue
			}
			lx, ly := make([]float64, len(idx)), make([]float64, len(idx))
			for k, i := range idx {
				lx[k], ly[k] = xs[i], ys[i]
			}
			pt := geom.Point{Color: SetAlpha(colors[j], 0.5), Radius: radius}
			if radii != nil {
				pt.SizeFunc = func(k int) vg.Length { return radii[idx[k]] }
			}
			s, err := pt.Plotter(lx, ly)
			if err != nil {
				return nil, err
			}
			p.Add(s)
			if opts.Legend {
				p.Legend.Add(level, s)
			}
		}
	}

	if opts.Legend {
		var items []legendItem
		if hue != nil {
			items = append(items, scaleLegend(hc.Name, hue, 1, func(v float64) geom.Swatch {
				return geom.Swatch{Color: SetAlpha(hue.Color(v), 0.5), Radius: radius}
			})...)
		}
		if area != nil {
			items = append(items, scaleLegend(sc.Name, area, scale, func(v float64) geom.Swatch {
				return geom.Swatch{Color: pointColor, Radius: geom.AreaRadius(area.Range(v, minArea, maxArea))}
			})...)
		}
		for _, it := range items {
			p.Legend.Add(it.Label, it.Swatch)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// ----------------------------------------------------------------------------
// Helpers

func newPanel(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return p
}

func rotateX(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
}

// addBars adds the dodged bars of series to p, optionally with value
// labels and a legend entry per series.
func addBars(p *plot.Plot, series []geom.Series, labels, legend bool) error {
	bars, err := geom.Bars(series, barWidth)
	if err != nil {
		return err
	}
	for _, b := range bars {
		p.Add(b)
	}
	if legend && len(bars) == len(series) {
		for i, s := range series {
			p.Legend.Add(s.Name, bars[i])
		}
	}
	if !labels {
		return nil
	}
	for i, s := range series {
		l, err := geom.ValueLabels(s, i, len(series), barWidth, "%.2f")
		if err != nil {
			return err
		}
		if l != nil {
			p.Add(l)
		}
	}
	return nil
}

// histogram adds a histogram of xs with the given number of bins and its
// density, scaled to counts, to p.
func histogram(p *plot.Plot, xs []float64, bins int, fill, line color.Color) (*plotter.Histogram, error) {
	binned := stat.Bin(xs, &stat.BinOptions{Bins: bins})
	h := geom.Hist(binned, fill)
	if h == nil {
		return nil, nil
	}
	p.Add(h)
	if curve := stat.Density(xs, densityPoints); curve != nil {
		width := binned[0].Max - binned[0].Min
		l, err := geom.DensityLine(curve, float64(len(xs))*width, line)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	return h, nil
}

// crossTab holds the counts of the levels of one column within each
// level of another.
type crossTab struct {
	counts map[string]map[string]float64
	totals map[string]float64 // rows per outer level, missing inner values included
}

// crossTabulate counts the levels of c2 within the levels of c1. The
// levels of c1 are returned in order of first appearance.
func crossTabulate(c1, c2 *Column) ([]string, crossTab) {
	levels, rows := c1.Partition()
	tab := crossTab{
		counts: make(map[string]map[string]float64, len(levels)),
		totals: make(map[string]float64, len(levels)),
	}
	for i, l := range levels {
		tab.totals[l] = float64(len(rows[i]))
		m := make(map[string]float64)
		for _, r := range rows[i] {
			if !c2.Missing(r) {
				m[c2.Value(r)]++
			}
		}
		tab.counts[l] = m
	}
	return levels, tab
}

// series returns one bar series per hue level occurring within levels.
// Relative counts are divided by the number of rows of the outer level.
func (t crossTab) series(levels, hue []string, relative bool) []geom.Series {
	var series []geom.Series
	for _, h := range hue {
		values := make([]float64, len(levels))
		present := false
		for i, l := range levels {
			v := t.counts[l][h]
			if v > 0 {
				present = true
			}
			if relative {
				v /= t.totals[l]
			}
			values[i] = v
		}
		if !present {
			continue
		}
		series = append(series, geom.Series{Name: h, Values: values, Color: plotutil.Color(len(series))})
	}
	return series
}

// levelValue is the summary of a numeric column for one category level.
type levelValue struct {
	Level string
	Value float64
}

// aggregate summarises nc by m for every level of cc, largest first.
// Levels without values are skipped.
func (c *Charter) aggregate(cc, nc *Column, m stat.Measure) []levelValue {
	levels, rows := cc.Partition()
	groups := make([]levelValue, 0, len(levels))
	for i, l := range levels {
		xs := values(nc, rows[i])
		if len(xs) == 0 {
			c.log().Debug("skipping level without values", "chart", "aggregate", "column", cc.Name, "level", l)
			continue
		}
		groups = append(groups, levelValue{l, stat.Aggregate(xs, m)})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	return groups
}

// legendItem is one legend entry of a continuous aesthetic.
type legendItem struct {
	Label  string
	Swatch geom.Swatch
}

// scaleLegend samples legendSamples values of s. Labels show the column
// name and the sampled value divided by unscale.
func scaleLegend(name string, s *Scale, unscale float64, swatch func(v float64) geom.Swatch) []legendItem {
	ticks := s.Ticks(legendSamples)
	items := make([]legendItem, len(ticks))
	for i, v := range ticks {
		items[i] = legendItem{
			Label:  name + " " + strconv.FormatFloat(v/unscale, 'g', 4, 64),
			Swatch: swatch(v),
		}
	}
	return items
}

// bubbleAreas are the marker areas (v - min + 1) / scale of vs.
func bubbleAreas(vs []float64, scale float64) []float64 {
	min, _ := stat.Bounds(vs)
	areas := make([]float64, len(vs))
	for i, v := range vs {
		areas[i] = (v - min + 1) / scale
	}
	return areas
}

// valueCounts returns the levels of col ordered by descending count;
// equal counts keep the order of first appearance.
func valueCounts(col *Column) ([]string, []float64) {
	levels, rows := col.Partition()
	idx := make([]int, len(levels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return len(rows[idx[a]]) > len(rows[idx[b]]) })
	sorted := make([]string, len(idx))
	counts := make([]float64, len(idx))
	for i, j := range idx {
		sorted[i] = levels[j]
		counts[i] = float64(len(rows[j]))
	}
	return sorted, counts
}

// numericColumns looks up the named columns, all of which must be numeric.
func numericColumns(ds *Dataset, names ...string) ([]*Column, error) {
	cols := make([]*Column, len(names))
	for i, name := range names {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		if !col.Kind.Numeric() {
			return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, name, col.Kind)
		}
		cols[i] = col
	}
	return cols, nil
}

// completeRows returns the rows in which none of cols is missing.
func completeRows(cols ...*Column) []int {
	if len(cols) == 0 {
		return nil
	}
	rows := make([]int, 0, cols[0].Len())
outer:
	for i := 0; i < cols[0].Len(); i++ {
		for _, c := range cols {
			if c.Missing(i) {
				continue outer
			}
		}
		rows = append(rows, i)
	}
	return rows
}

// values returns the non-missing values of col in the given rows.
func values(col *Column, rows []int) []float64 {
	xs := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v := col.Data[r]; !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	return xs
}
