// Package palette implements the avatar color model: color literals,
// RGB/HSL conversion, interpolation, random variation and the resolution of
// flexible palette specifications into concrete colors.
//
// Malformed input never produces an error here. Unrecognized literals resolve
// to Gray and empty palettes fall back to generated colors, so a caller always
// receives a deterministic image.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an opaque RGB color with channels in [0, 255].
// Channels may be fractional while colors are being blended; they are only
// rounded when painted.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	// Gray is the fallback for color literals that cannot be parsed.
	Gray = Color{128, 128, 128}
)

// RGBA implements color.Color. Channels are rounded half up, the way
// canvas color strings are.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(roundHalfUp(c.R)) * 0x101
	g = uint32(roundHalfUp(c.G)) * 0x101
	b = uint32(roundHalfUp(c.B)) * 0x101
	return r, g, b, 0xffff
}

// Bytes returns the channels as they are stored in an RGBA pixel buffer:
// clamped to [0, 255] and rounded half to even.
func (c Color) Bytes() (r, g, b uint8) {
	return clampByte(c.R), clampByte(c.G), clampByte(c.B)
}

// String formats the color as a CSS rgb() function.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(roundHalfUp(c.R)), int(roundHalfUp(c.G)), int(roundHalfUp(c.B)))
}

// Luminance returns the relative luminance of c in [0, 1] using the
// Rec. 601 luma weights.
func (c Color) Luminance() float64 {
	return (0.299*c.R + 0.587*c.G + 0.114*c.B) / 255
}

// IsDark reports whether text drawn in black on c would be hard to read.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.35
}

// Interpolate blends a and b per channel. t = 0 yields a, t = 1 yields b.
func Interpolate(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// FromColor converts a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R), G: float64(n.G), B: float64(n.B)}
}

// Parse converts a color literal into a Color.
// It accepts "#rgb" and "#rrggbb" in either case. Anything else yields Gray.
func Parse(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		return Gray
	}
	return c
}

// ParseHex parses "#rgb" or "#rrggbb". ok is false for any other input.
func ParseHex(s string) (c Color, ok bool) {
	if len(s) < 2 || s[0] != '#' {
		return Color{}, false
	}
	hex := s[1:]

	var r, g, b uint32
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	}
	if !ok {
		return Color{}, false
	}
	return Color{R: float64(r), G: float64(g), B: float64(b)}, true
}

// parseHex accumulates hex digits into val and reports whether all were valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts c to HSL.
func RGBToHSL(c Color) HSL {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
		h /= 6
	case g:
		h = ((b-r)/d + 2) / 6
	default:
		h = ((r-g)/d + 4) / 6
	}

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent) to RGB.
func HSLToRGB(h, s, l float64) Color {
	h /= 360
	s /= 100
	l /= 100

	if s == 0 {
		gray := l * 255
		return Color{R: gray, G: gray, B: gray}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: hueToRGB(p, q, h+1.0/3) * 255,
		G: hueToRGB(p, q, h) * 255,
		B: hueToRGB(p, q, h-1.0/3) * 255,
	}
}

// RGB converts the HSL color back to RGB.
func (c HSL) RGB() Color {
	return HSLToRGB(c.H, c.S, c.L)
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
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func roundHalfUp(x float64) float64 {
	return math.Floor(clamp255(x) + 0.5)
}

func clampByte(x float64) uint8 {
	return uint8(math.RoundToEven(clamp255(x)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
