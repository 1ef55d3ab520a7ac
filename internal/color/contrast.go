package color

import (
	"math"
	"strconv"
)

// RelativeLuminance returns the WCAG 2.0 relative luminance in [0,1].
// See http://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Color) RelativeLuminance() float64 {
	r := luminanceComponent(c.r)
	g := luminanceComponent(c.g)
	b := luminanceComponent(c.b)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func luminanceComponent(v float64) float64 {
	c := v / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// IsLighterThan compares relative luminance
func (c Color) IsLighterThan(other Color) bool {
	return c.RelativeLuminance() > other.RelativeLuminance()
}

// IsDarkerThan compares relative luminance
func (c Color) IsDarkerThan(other Color) bool {
	return c.RelativeLuminance() < other.RelativeLuminance()
}

// LighterColor lightens of towards relative. A zero factor means 0.5.
func LighterColor(of, relative Color, factor float64) Color {
	if of.IsLighterThan(relative) {
		return of
	}
	if factor == 0 {
		factor = 0.5
	}
	lum1 := of.RelativeLuminance()
	lum2 := relative.RelativeLuminance()
	if lum2 == 0 {
		return of
	}
	return of.Lighten(factor * (lum2 - lum1) / lum2)
}

// DarkerColor darkens of towards relative. A zero factor means 0.5.
func DarkerColor(of, relative Color, factor float64) Color {
	if of.IsDarkerThan(relative) {
		return of
	}
	if factor == 0 {
		factor = 0.5
	}
	lum1 := of.RelativeLuminance()
	lum2 := relative.RelativeLuminance()
	if lum1 == 0 {
		return of
	}
	return of.Darken(factor * (lum1 - lum2) / lum1)
}

// SVGFill renders the color as SVG fill attributes. The toolkit's SVG
// renderer does not understand rgba(), so alpha goes to fill-opacity.
// A nil color renders an empty fill.
func SVGFill(c *Color) string {
	if c == nil {
		return `fill=""`
	}
	return `fill="rgb(` + formatNumber(c.r) + `, ` + formatNumber(c.g) + `, ` + formatNumber(c.b) +
		`)" fill-opacity="` + formatNumber(c.a) + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
