package sketchbook

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Named colors used by the bundled sketches.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
	ColorSteelBlue   = RGB8(70, 130, 180)
	ColorPlum        = RGB8(221, 160, 221)
	ColorCrimson     = RGB8(220, 20, 60)
	ColorGold        = RGB8(255, 215, 0)
	ColorTeal        = RGB8(0, 128, 128)
	ColorSlate       = RGB8(47, 53, 66)
	ColorIvory       = RGB8(255, 255, 240)
	ColorCoral       = RGB8(255, 127, 80)
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

// RGB8 returns an opaque color from 0-255 components.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Hex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading '#' is
// optional.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("parse hex color %q: bad length", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// HSL converts hue (turns, wraps), saturation and lightness in [0, 1] to an
// opaque color.
func HSL(h, s, l float64) Color {
	h = h - math.Floor(h)
	s, l = clamp01(s), clamp01(l)
	if s == 0 {
		return Color{l, l, l, 1}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
		A: 1,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSV converts hue (turns, wraps), saturation and value in [0, 1] to an
// opaque color.
func HSV(h, s, v float64) Color {
	h = h - math.Floor(h)
	s, v = clamp01(s), clamp01(v)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return Color{v, t, p, 1}
	case 1:
		return Color{q, v, p, 1}
	case 2:
		return Color{p, v, t, 1}
	case 3:
		return Color{p, q, v, 1}
	case 4:
		return Color{t, p, v, 1}
	}
	return Color{v, p, q, 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp interpolates every component of c towards o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Transparent reports whether the color has no visible alpha.
func (c Color) Transparent() bool {
	return c.A <= 0
}

// NRGBA converts to a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// premultiplied converts to a premultiplied color.RGBA for image.Fill.
func (c Color) premultiplied() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}
