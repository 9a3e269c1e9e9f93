package eda

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Theme collects the visual defaults of the charts. Colors are builtin
// names or "#rrggbb[aa]"; sizes are in inches.
type Theme struct {
	BoxColor     string `yaml:"box_color"`
	HistColor    string `yaml:"hist_color"`
	DensityColor string `yaml:"density_color"`
	PointColor   string `yaml:"point_color"`

	// Bars of a single distribution are shaded from BarLow to BarHigh.
	BarLow  string `yaml:"bar_low"`
	BarHigh string `yaml:"bar_high"`

	// Bins is the number of histogram bins.
	Bins int `yaml:"bins"`

	// Size of one cell of a grid of panels.
	PanelWidth  float64 `yaml:"panel_width"`
	PanelHeight float64 `yaml:"panel_height"`

	// Size of a stand-alone figure.
	FigureWidth  float64 `yaml:"figure_width"`
	FigureHeight float64 `yaml:"figure_height"`
}

var DefaultTheme = Theme{
	BoxColor:     "skyblue",
	HistColor:    "orange",
	DensityColor: "#cc6600",
	PointColor:   "#1f77b4",
	BarLow:       "cyan",
	BarHigh:      "magenta",
	Bins:         20,
	PanelWidth:   6,
	PanelHeight:  5,
	FigureWidth:  10,
	FigureHeight: 6,
}

// ParseTheme reads a YAML theme. Keys not present keep the values of
// DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("eda: bad theme: %w", err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// withDefaults fills the zero fields of t from DefaultTheme.
func (t Theme) withDefaults() Theme {
	d := DefaultTheme
	for _, f := range []struct{ v, def *string }{
		{&t.BoxColor, &d.BoxColor},
		{&t.HistColor, &d.HistColor},
		{&t.DensityColor, &d.DensityColor},
		{&t.PointColor, &d.PointColor},
		{&t.BarLow, &d.BarLow},
		{&t.BarHigh, &d.BarHigh},
	} {
		if *f.v == "" {
			*f.v = *f.def
		}
	}
	if t.Bins <= 0 {
		t.Bins = d.Bins
	}
	for _, f := range []struct{ v, def *float64 }{
		{&t.PanelWidth, &d.PanelWidth},
		{&t.PanelHeight, &d.PanelHeight},
		{&t.FigureWidth, &d.FigureWidth},
		{&t.FigureHeight, &d.FigureHeight},
	} {
		if *f.v <= 0 {
			*f.v = *f.def
		}
	}
	return t
}

func (t Theme) validate() error {
	for _, c := range []string{t.BoxColor, t.HistColor, t.DensityColor, t.PointColor, t.BarLow, t.BarHigh} {
		if !validColor(c) {
			return fmt.Errorf("eda: bad theme color %q", c)
		}
	}
	if t.Bins <= 0 {
		return fmt.Errorf("eda: bad theme bins %d", t.Bins)
	}
	for _, s := range []float64{t.PanelWidth, t.PanelHeight, t.FigureWidth, t.FigureHeight} {
		if s <= 0 {
			return fmt.Errorf("eda: bad theme size %g", s)
		}
	}
	return nil
}

func (t Theme) color(s string) color.Color { return String2Color(s) }

func (t Theme) barPalette(n int) []color.Color {
	return gradient(t.color(t.BarLow), t.color(t.BarHigh), n)
}

func (t Theme) panelSize() (vg.Length, vg.Length) {
	return vg.Length(t.PanelWidth) * vg.Inch, vg.Length(t.PanelHeight) * vg.Inch
}

func (t Theme) figureSize() (vg.Length, vg.Length) {
	return vg.Length(t.FigureWidth) * vg.Inch, vg.Length(t.FigureHeight) * vg.Inch
}
