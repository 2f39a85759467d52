package style

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with straight (non-premultiplied) alpha, all
// components in [0,1]. The zero value is fully transparent black.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color with alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HSL creates an opaque color from hue (degrees), saturation and lightness.
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// HSLA is HSL with alpha.
func HSLA(h, s, l, a float64) Color {
	c := colorful.Hsl(h, s, l)
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// HexColor parses the CSS hex notations #rgb, #rgba, #rrggbb and #rrggbbaa.
func HexColor(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	var digits []string
	switch len(s) {
	case 3:
		digits = []string{s[0:1] + s[0:1], s[1:2] + s[1:2], s[2:3] + s[2:3], "ff"}
	case 4:
		digits = []string{s[0:1] + s[0:1], s[1:2] + s[1:2], s[2:3] + s[2:3], s[3:4] + s[3:4]}
	case 6:
		digits = []string{s[0:2], s[2:4], s[4:6], "ff"}
	case 8:
		digits = []string{s[0:2], s[2:4], s[4:6], s[6:8]}
	default:
		return Color{}, fmt.Errorf("hex color %q has invalid length", hex)
	}
	var comp [4]float64
	for i, d := range digits {
		x, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("hex color %q: %w", hex, err)
		}
		comp[i] = float64(x) / 255
	}
	return Color{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}, nil
}

// Lerp blends two colors at fraction t. Blending happens in CIE Lab space,
// which keeps intermediate colors perceptually between the endpoints
// instead of detouring through grey; alpha interpolates linearly. The
// result is clamped back into sRGB gamut.
func (c Color) Lerp(d Color, t float64) Color {
	from := colorful.Color{R: c.R, G: c.G, B: c.B}
	to := colorful.Color{R: d.R, G: d.G, B: d.B}
	blend := from.BlendLab(to, t).Clamped()
	return Color{R: blend.R, G: blend.G, B: blend.B, A: c.A*(1-t) + d.A*t}
}

// Hex renders the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", byteOf(c.R), byteOf(c.G), byteOf(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", byteOf(c.R), byteOf(c.G), byteOf(c.B), byteOf(c.A))
}

func byteOf(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}
