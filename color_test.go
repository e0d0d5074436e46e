package sketchpad

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Color{255, 0, 0, 255}},
		{"ff0000", Color{255, 0, 0, 255}},
		{"#00fF7f", Color{0, 255, 127, 255}},
		{"#000000", Color{0, 0, 0, 255}},
		{"#fff", Color{255, 255, 255, 255}},
		{"#1a2", Color{0x11, 0xaa, 0x22, 255}},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"ABCDEF80", Color{0xab, 0xcd, 0xef, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#ff", "#ffff", "#fffff", "#fffffff", "#fffffffff", "#zzzzzz", " #ffffff", "##ffffff"} {
		_, err := ParseHex(in)
		var pe *ColorParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseHex(%q) error = %v, want *ColorParseError", in, err)
			continue
		}
		if pe.Input != in {
			t.Errorf("ColorParseError.Input = %q, want %q", pe.Input, in)
		}
	}
}

func TestMustParseHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex(\"nope\") did not panic")
		}
	}()
	MustParseHex("nope")
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Red, "#ff0000"},
		{Color{0x12, 0x34, 0x56, 255}, "#123456"},
		{Color{0x12, 0x34, 0x56, 0x78}, "#12345678"},
		{Transparent, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%#v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
		back, err := ParseHex(tt.want)
		if err != nil || back != tt.c {
			t.Errorf("ParseHex(%q) = %v, %v; want %v", tt.want, back, err, tt.c)
		}
	}
}

func TestColor_MatchRGB(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"identical", Red, Red, true},
		{"alpha differs", Color{1, 2, 3, 255}, Color{1, 2, 3, 0}, true},
		{"red differs", Color{1, 2, 3, 255}, Color{0, 2, 3, 255}, false},
		{"green differs", Color{1, 2, 3, 255}, Color{1, 0, 3, 255}, false},
		{"blue differs", Color{1, 2, 3, 255}, Color{1, 2, 0, 255}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.MatchRGB(tt.b); got != tt.want {
				t.Errorf("MatchRGB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if got.A != 128 || got.R < 254 {
		t.Errorf("FromColor(premultiplied half red) = %v, want ~(255,0,0,128)", got)
	}
	if got := FromColor(Blue); got != Blue {
		t.Errorf("FromColor(Blue) = %v", got)
	}
}

func TestPalette_Opaque(t *testing.T) {
	for i, c := range Palette {
		if c.A != 255 {
			t.Errorf("Palette[%d] = %v is not opaque", i, c)
		}
	}
}
