package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// trackPalette supplies colors for tracks declared without one.
var trackPalette = []string{
	"#3366cc", "#dc3912", "#ff9900", "#109618", "#990099",
	"#0099c6", "#dd4477", "#66aa00", "#b82e2e", "#316395",
}

// ParseColor parses a hex color like "#3366cc". Unparseable or empty input
// falls back to a palette color chosen by index.
func ParseColor(s string, fallbackIdx int) color.RGBA {
	if s == "" {
		s = trackPalette[fallbackIdx%len(trackPalette)]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(trackPalette[fallbackIdx%len(trackPalette)])
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Lighten shifts a color toward white in HSL space by the given amount in
// [0, 1]. Used for band background annuli.
func Lighten(c color.RGBA, amount float64) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()
	l += (1 - l) * amount
	if l > 1 {
		l = 1
	}
	out := colorful.Hsl(h, s, l)
	r, g, b := out.Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

// HexColor formats a color as "#rrggbb" for SVG attributes.
func HexColor(c color.RGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cf.Hex()
}
