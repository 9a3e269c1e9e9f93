package eda

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"skyblue", color.NRGBA{0x87, 0xce, 0xeb, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestValidColor(t *testing.T) {
	for _, s := range []string{"red", "#000000", "#00000080", "#AbCdEf"} {
		assert.True(t, validColor(s), s)
	}
	for _, s := range []string{"", "nonsens", "#00", "#gg0000", "#0000000"} {
		assert.False(t, validColor(s), s)
	}
}

func TestGradient(t *testing.T) {
	g := gradient(BuiltinColors["cyan"], BuiltinColors["magenta"], 3)
	require.Len(t, g, 3)
	assert.Equal(t, color.Color(color.NRGBA{0x00, 0xff, 0xff, 0xff}), g[0])
	assert.Equal(t, color.Color(color.NRGBA{0x7f, 0x7f, 0xff, 0xff}), g[1])
	assert.Equal(t, color.Color(color.NRGBA{0xff, 0x00, 0xff, 0xff}), g[2])

	one := gradient(BuiltinColors["red"], BuiltinColors["blue"], 1)
	assert.Equal(t, color.Color(color.NRGBA{0xff, 0x00, 0x00, 0xff}), one[0])
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(BuiltinColors["red"], 0.5)
	assert.Equal(t, color.Color(color.NRGBA{0xff, 0, 0, 0x7f}), c)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte("box_color: navy\nbins: 30\npanel_width: 4.5\n"))
	require.NoError(t, err)
	assert.Equal(t, "navy", theme.BoxColor)
	assert.Equal(t, 30, theme.Bins)
	assert.Equal(t, 4.5, theme.PanelWidth)
	assert.Equal(t, DefaultTheme.HistColor, theme.HistColor)

	empty, err := ParseTheme(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, empty)

	for _, bad := range []string{"bins: 0", "hist_color: puce", "figure_height: -1", "bins: [1"} {
		_, err := ParseTheme([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestThemeWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultTheme, Theme{}.withDefaults())
	assert.Equal(t, DefaultTheme, DefaultTheme.withDefaults())

	th := Theme{PointColor: "black", PanelHeight: 2, Bins: -3}.withDefaults()
	assert.Equal(t, "black", th.PointColor)
	assert.Equal(t, 2.0, th.PanelHeight)
	assert.Equal(t, DefaultTheme.Bins, th.Bins)
	assert.Equal(t, DefaultTheme.BarLow, th.BarLow)
	assert.NoError(t, th.validate())
}
