package splatter

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("splatter: invalid color")

// Color is a linear RGBA color with straight (non-premultiplied) alpha.
// Each component is nominally in the range [0, 1].
//
// Colors are stored linear because vertex colors are interpolated across
// triangles and blended by the GPU; constructors taking sRGB input convert.
type Color struct {
	R, G, B, A float32
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// DefaultVertexColor is written for vertices that carry no color of their own.
var DefaultVertexColor = White

// RGB creates an opaque color from linear components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from linear components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// SRGB creates a color from sRGB encoded components in [0, 1].
func SRGB(r, g, b, a float32) Color {
	lr, lg, lb := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.LinearRgb()
	return Color{R: float32(lr), G: float32(lg), B: float32(lb), A: a}
}

// HSL creates an opaque color from sRGB hue [0, 360), saturation and lightness [0, 1].
func HSL(h, s, l float32) Color {
	c := colorful.Hsl(float64(h), float64(s), float64(l))
	return SRGB(float32(c.R), float32(c.G), float32(c.B), 1)
}

// FromColor converts a standard (sRGB) color.Color to a linear Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGB(float32(nc.R)/255, float32(nc.G)/255, float32(nc.B)/255, float32(nc.A)/255)
}

// Hex parses an sRGB hex string.
// Supported formats: "#rgb", "#rrggbb" and "#rrggbbaa"; the '#' is optional.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := float32(1)
	switch len(h) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float32(a) / 255
		h = h[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return SRGB(float32(c.R), float32(c.G), float32(c.B), alpha), nil
}

// Named returns the SVG 1.1 color with the given name, e.g. "steelblue".
func Named(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, name)
	}
	return FromColor(c), nil
}

// ParseColor accepts either a hex string or a color name.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "#") {
		return Hex(s)
	}
	return Named(s)
}

// NRGBA converts the color to 8-bit sRGB, clamping out of range components.
func (c Color) NRGBA() color.NRGBA {
	sc := colorful.LinearRgb(float64(clamp01(c.R)), float64(clamp01(c.G)), float64(clamp01(c.B))).Clamped()
	r, g, b := sc.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Channels returns the components in RGBA order, the layout used for
// per-vertex color attributes.
func (c Color) Channels() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ColorFromChannels is the inverse of Channels. It panics if fewer than
// four values are given.
func ColorFromChannels(ch []float32) Color {
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
