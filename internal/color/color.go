// Package color implements the immutable color value used by the registry
// and the stylesheet builder.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed
var ErrInvalidHex = errors.New("invalid hex color")

// RGBA is the red, green, blue and alpha view of a color.
// R, G and B are in [0,255], A is in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// HSLA is the hue, saturation, lightness and alpha view of a color.
// H is in [0,360], S, L and A are in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// HSVA is the hue, saturation, value and alpha view of a color.
type HSVA struct {
	H, S, V, A float64
}

// Color is an immutable RGBA color. The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// New creates a color from channel values, clamping each to its range
func New(r, g, b, a float64) Color {
	return Color{
		r: clamp(r, 0, 255),
		g: clamp(g, 0, 255),
		b: clamp(b, 0, 255),
		a: clamp(a, 0, 1),
	}
}

// RGB creates an opaque color
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// FromHSLA converts an HSL color to RGB
func FromHSLA(hsla HSLA) Color {
	c := colorful.Hsl(clamp(hsla.H, 0, 360), clamp(hsla.S, 0, 1), clamp(hsla.L, 0, 1))
	return New(c.R*255, c.G*255, c.B*255, hsla.A)
}

// FromHSVA converts an HSV color to RGB
func FromHSVA(hsva HSVA) Color {
	c := colorful.Hsv(clamp(hsva.H, 0, 360), clamp(hsva.S, 0, 1), clamp(hsva.V, 0, 1))
	return New(c.R*255, c.G*255, c.B*255, hsva.A)
}

// White returns opaque white
func White() Color { return RGB(255, 255, 255) }

// Black returns opaque black
func Black() Color { return RGB(0, 0, 0) }

// Red returns opaque red
func Red() Color { return RGB(255, 0, 0) }

// Green returns opaque green
func Green() Color { return RGB(0, 255, 0) }

// Blue returns opaque blue
func Blue() Color { return RGB(0, 0, 255) }

// Cyan returns opaque cyan
func Cyan() Color { return RGB(0, 255, 255) }

// LightGrey returns opaque light grey
func LightGrey() Color { return RGB(211, 211, 211) }

// Transparent returns black with zero alpha
func Transparent() Color { return New(0, 0, 0, 0) }

// ParseHex parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA colors. The leading # is optional.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var channels []float64
	switch len(s) {
	case 3, 4:
		for _, ch := range s {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, hex, err)
			}
			channels = append(channels, float64(v*16+v))
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, hex, err)
			}
			channels = append(channels, float64(v))
		}
	default:
		return Color{}, fmt.Errorf("%w %q: unexpected length %d", ErrInvalidHex, hex, len(s))
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = channels[3] / 255
	}
	return New(channels[0], channels[1], channels[2], alpha), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for hard-coded defaults.
func MustParseHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA returns the RGBA view
func (c Color) RGBA() RGBA {
	return RGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// HSLA returns the HSL view
func (c Color) HSLA() HSLA {
	h, s, l := c.colorful().Hsl()
	return HSLA{H: clamp(h, 0, 360), S: clamp(s, 0, 1), L: clamp(l, 0, 1), A: c.a}
}

// HSVA returns the HSV view
func (c Color) HSVA() HSVA {
	h, s, v := c.colorful().Hsv()
	return HSVA{H: clamp(h, 0, 360), S: clamp(s, 0, 1), V: clamp(v, 0, 1), A: c.a}
}

// Alpha returns the alpha channel
func (c Color) Alpha() float64 {
	return c.a
}

// Hex returns the color as lower case rrggbbaa
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x%02x",
		int(math.Floor(c.r)),
		int(math.Floor(c.g)),
		int(math.Floor(c.b)),
		int(math.Floor(c.a*255)),
	)
}

// String returns the stylesheet representation, e.g. rgba(60.000, 60.000, 60.000, 1.000)
func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.r, c.g, c.b, c.a)
}

// Lighten increases the HSL lightness by l*factor
func (c Color) Lighten(factor float64) Color {
	hsla := c.HSLA()
	hsla.L += hsla.L * factor
	return FromHSLA(hsla)
}

// Darken decreases the HSL lightness by l*factor
func (c Color) Darken(factor float64) Color {
	hsla := c.HSLA()
	hsla.L -= hsla.L * factor
	return FromHSLA(hsla)
}

// Transparent multiplies the alpha channel by factor
func (c Color) Transparent(factor float64) Color {
	return New(c.r, c.g, c.b, c.a*factor)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.r / 255, G: c.g / 255, B: c.b / 255}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
