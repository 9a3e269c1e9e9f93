package eda

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Scale maps a continuous data domain linearly onto [0,1]. It is used
// for the size and color aesthetics of scatter plots.
type Scale struct {
	DomainMin float64
	DomainMax float64
}

// NewScale returns an untrained scale.
func NewScale() *Scale {
	return &Scale{DomainMin: math.Inf(+1), DomainMax: math.Inf(-1)}
}

// Train widens the domain of s to cover xs. NaNs are ignored.
func (s *Scale) Train(xs []float64) {
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Pos maps x into [0,1]. A degenerate domain maps everything to 0.5.
func (s *Scale) Pos(x float64) float64 {
	span := s.DomainMax - s.DomainMin
	if !(span > 0) {
		return 0.5
	}
	p := (x - s.DomainMin) / span
	return math.Max(0, math.Min(1, p))
}

// Range maps x into [lo,hi].
func (s *Scale) Range(x, lo, hi float64) float64 {
	return lo + s.Pos(x)*(hi-lo)
}

// Ticks returns n evenly spaced values spanning the domain of s. A
// degenerate domain yields its single value, an untrained scale nothing.
func (s *Scale) Ticks(n int) []float64 {
	if n <= 0 || s.DomainMin > s.DomainMax {
		return nil
	}
	if s.DomainMin == s.DomainMax || n == 1 {
		return []float64{s.DomainMin}
	}
	step := (s.DomainMax - s.DomainMin) / float64(n-1)
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = s.DomainMin + float64(i)*step
	}
	ticks[n-1] = s.DomainMax
	return ticks
}

// Color maps x onto a diverging blue-red color map.
func (s *Scale) Color(x float64) color.Color {
	return colorAt(hueMap(), s.Pos(x))
}

// discreteColors returns n distinct colors of the hue color map.
func discreteColors(n int) []color.Color {
	cm := hueMap()
	colors := make([]color.Color, n)
	for i := range colors {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = colorAt(cm, t)
	}
	return colors
}

func hueMap() palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMax(1)
	cm.SetMin(0)
	return cm
}

func colorAt(cm palette.ColorMap, t float64) color.Color {
	c, err := cm.At(t)
	if err != nil {
		return color.Black
	}
	return c
}
