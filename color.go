package sketchpad

import (
	"image/color"
	"strings"
)

// Color is a non-premultiplied RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Opaque returns c with alpha set to 255.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// MatchRGB reports whether c and other have identical red, green and blue
// channels. Alpha is not compared.
func (c Color) MatchRGB(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	n := 3
	if c.A != 255 {
		n = 4
	}
	buf := make([]byte, 1, 1+2*n)
	buf[0] = '#'
	ch := [4]uint8{c.R, c.G, c.B, c.A}
	for _, v := range ch[:n] {
		buf = append(buf, digits[v>>4], digits[v&0x0f])
	}
	return string(buf)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses a hex color string.
// Supported forms, with or without a leading '#': "RGB", "RRGGBB" and
// "RRGGBBAA". Digits are case-insensitive. Any other input yields a
// *ColorParseError.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var v [8]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok || i >= len(v) {
			return Color{}, &ColorParseError{Input: s}
		}
		v[i] = d
	}

	switch len(hex) {
	case 3:
		return RGB(v[0]*17, v[1]*17, v[2]*17), nil
	case 6:
		return RGB(v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	case 8:
		return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, nil
	default:
		return Color{}, &ColorParseError{Input: s}
	}
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level color tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Transparent = Color{}
)

// Palette is the preset swatch row offered by hosts.
var Palette = []Color{
	Black,
	MustParseHex("#ff0000"),
	MustParseHex("#00ff00"),
	MustParseHex("#0000ff"),
	MustParseHex("#ffff00"),
	MustParseHex("#ff00ff"),
	MustParseHex("#00ffff"),
	MustParseHex("#ffa500"),
	MustParseHex("#800080"),
	MustParseHex("#a52a2a"),
}
