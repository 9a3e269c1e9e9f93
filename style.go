package eda

import (
	"fmt"
	"image/color"
	"strings"
)

// Set alpha to a in color c.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"cyan":    color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.RGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":  color.RGBA{0xff, 0xff, 0x00, 0xff},
	"orange":  color.RGBA{0xff, 0xa5, 0x00, 0xff},
	"skyblue": color.RGBA{0x87, 0xce, 0xeb, 0xff},
	"navy":    color.RGBA{0x00, 0x00, 0x80, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":  color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// String2Color parses a builtin color name or a "#rrggbb[aa]" hex color.
// Unknown colors render as a translucent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// validColor reports whether s is understood by String2Color.
func validColor(s string) bool {
	if _, ok := BuiltinColors[s]; ok {
		return true
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// gradient returns n colors evenly interpolated from lo to hi.
func gradient(lo, hi color.Color, n int) []color.Color {
	r0, g0, b0, a0 := lo.RGBA()
	r1, g1, b1, a1 := hi.RGBA()
	lerp := func(a, b uint32, t float64) uint8 {
		return uint8((float64(a) + t*(float64(b)-float64(a))) / 0x101)
	}
	colors := make([]color.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = color.NRGBA{lerp(r0, r1, t), lerp(g0, g1, t), lerp(b0, b1, t), lerp(a0, a1, t)}
	}
	return colors
}
