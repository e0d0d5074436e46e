package sketchpad

import (
	"bytes"
	"errors"
	"testing"
)

func filled(w, h int, c Color) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Clear(c)
	return pm
}

func countColor(b Buffer, c Color) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestFill_AllWhiteToRed(t *testing.T) {
	pm := filled(4, 4, White)

	n, err := FillHex(pm, 0, 0, "#FF0000")
	if err != nil {
		t.Fatalf("FillHex() error = %v", err)
	}
	if n != 16 {
		t.Errorf("FillHex() repainted %d pixels, want 16", n)
	}
	want := Color{R: 255, G: 0, B: 0, A: 255}
	if got := countColor(pm, want); got != 16 {
		t.Errorf("%d pixels are %v, want 16", got, want)
	}
}

func TestFill_IsolatedPixelStays(t *testing.T) {
	pm := filled(4, 4, White)
	blue := Color{R: 0, G: 0, B: 255, A: 255}
	pm.SetPixel(2, 2, blue)

	if _, err := FillHex(pm, 0, 0, "#FF0000"); err != nil {
		t.Fatalf("FillHex() error = %v", err)
	}
	if got := countColor(pm, Red); got != 15 {
		t.Errorf("red pixels = %d, want 15", got)
	}
	if got := pm.Pixel(2, 2); got != blue {
		t.Errorf("pixel (2,2) = %v, want %v", got, blue)
	}
}

func TestFill_Idempotent(t *testing.T) {
	pm := filled(8, 8, White)
	pm.SetPixel(3, 3, Black)

	Fill(pm, 0, 0, Green)
	before := bytes.Clone(pm.Pix())

	if n := Fill(pm, 0, 0, Green); n != 0 {
		t.Errorf("second Fill() repainted %d pixels, want 0", n)
	}
	if !bytes.Equal(before, pm.Pix()) {
		t.Error("second Fill() modified the buffer")
	}
}

func TestFill_Containment(t *testing.T) {
	// Two white regions split by a one pixel black column at x=4.
	pm := filled(9, 5, White)
	for y := 0; y < 5; y++ {
		pm.SetPixel(4, y, Black)
	}

	n := Fill(pm, 1, 1, Red)
	if n != 20 {
		t.Errorf("Fill() repainted %d pixels, want 20", n)
	}
	for y := 0; y < 5; y++ {
		for x := 5; x < 9; x++ {
			if got := pm.Pixel(x, y); got != White {
				t.Fatalf("region B pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
		if got := pm.Pixel(4, y); got != Black {
			t.Fatalf("border pixel (4,%d) = %v, want black", y, got)
		}
	}
}

func TestFill_NoDiagonalLeak(t *testing.T) {
	// A diagonal of black pixels seals the top-left triangle.
	pm := filled(5, 5, White)
	for i := 0; i < 5; i++ {
		pm.SetPixel(i, 4-i, Black)
	}

	Fill(pm, 0, 0, Red)

	if got := pm.Pixel(4, 4); got != White {
		t.Errorf("pixel (4,4) = %v, fill crossed a diagonal", got)
	}
	if got := pm.Pixel(3, 0); got != Red {
		t.Errorf("pixel (3,0) = %v, want red", got)
	}
}

func TestFill_FullCoverage(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 7}, {64, 64}, {200, 3}}
	for _, sz := range sizes {
		pm := filled(sz.w, sz.h, Color{R: 10, G: 20, B: 30, A: 255})
		Fill(pm, sz.w/2, sz.h/2, Blue)
		if got := countColor(pm, Blue); got != sz.w*sz.h {
			t.Errorf("%dx%d: %d blue pixels, want %d", sz.w, sz.h, got, sz.w*sz.h)
		}
	}
}

func TestFill_AlphaForcedOpaque(t *testing.T) {
	pm := filled(6, 6, White)

	Fill(pm, 2, 2, Color{R: 0, G: 128, B: 0, A: 0})

	for i := 3; i < len(pm.Pix()); i += 4 {
		if a := pm.Pix()[i]; a != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, a)
		}
	}
	if got := pm.Pixel(5, 5); got != (Color{R: 0, G: 128, B: 0, A: 255}) {
		t.Errorf("pixel (5,5) = %v", got)
	}
}

func TestFill_IgnoresAlphaWhenMatching(t *testing.T) {
	pm := filled(4, 1, White)
	pm.SetPixel(2, 0, Color{R: 255, G: 255, B: 255, A: 40})

	if n := Fill(pm, 0, 0, Red); n != 4 {
		t.Errorf("Fill() repainted %d pixels, want 4", n)
	}
	if got := pm.Pixel(2, 0); got != Red {
		t.Errorf("semi-transparent white pixel = %v, want red", got)
	}
}

func TestFill_SameRGBDifferentAlphaIsNoop(t *testing.T) {
	pm := filled(3, 3, Color{R: 255, G: 0, B: 0, A: 100})
	before := bytes.Clone(pm.Pix())

	if n := Fill(pm, 1, 1, Red); n != 0 {
		t.Errorf("Fill() repainted %d pixels, want 0", n)
	}
	if !bytes.Equal(before, pm.Pix()) {
		t.Error("Fill() modified the buffer")
	}
}

func TestFill_SeedOutOfRange(t *testing.T) {
	pm := filled(4, 4, White)
	for _, seed := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if n := Fill(pm, seed.x, seed.y, Red); n != 0 {
			t.Errorf("Fill(%d,%d) repainted %d pixels, want 0", seed.x, seed.y, n)
		}
	}
	if got := countColor(pm, White); got != 16 {
		t.Errorf("white pixels = %d, want 16", got)
	}
}

func TestFill_EmptyBuffer(t *testing.T) {
	for _, pm := range []*Pixmap{NewPixmap(0, 0), NewPixmap(0, 5), NewPixmap(5, 0)} {
		if n := Fill(pm, 0, 0, Red); n != 0 {
			t.Errorf("Fill() on %dx%d repainted %d pixels", pm.Width(), pm.Height(), n)
		}
	}
}

func TestFill_EachPixelPaintedOnce(t *testing.T) {
	buf := newGridBuffer(16, 16, White)
	buf.SetPixel(7, 0, Black)
	buf.SetPixel(7, 1, Black)
	buf.writes = 0

	n := Fill(buf, 0, 0, Red)

	if n != 254 {
		t.Errorf("Fill() repainted %d pixels, want 254", n)
	}
	if buf.writes != n {
		t.Errorf("SetPixel called %d times for %d pixels", buf.writes, n)
	}
}

func TestFill_LargeRegion(t *testing.T) {
	pm := filled(1500, 1500, White)
	if n := Fill(pm, 750, 750, Red); n != 1500*1500 {
		t.Errorf("Fill() repainted %d pixels, want %d", n, 1500*1500)
	}
}

func TestFillHex_InvalidColorLeavesBuffer(t *testing.T) {
	pm := filled(4, 4, White)
	before := bytes.Clone(pm.Pix())

	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "red", "#1234567"} {
		n, err := FillHex(pm, 0, 0, in)
		if err == nil {
			t.Errorf("FillHex(%q) error = nil, want ColorParseError", in)
			continue
		}
		var pe *ColorParseError
		if !errors.As(err, &pe) {
			t.Errorf("FillHex(%q) error = %T, want *ColorParseError", in, err)
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("FillHex(%q) error does not match ErrInvalidColor", in)
		}
		if n != 0 {
			t.Errorf("FillHex(%q) = %d, want 0", in, n)
		}
	}
	if !bytes.Equal(before, pm.Pix()) {
		t.Error("FillHex() with invalid color modified the buffer")
	}
}

func BenchmarkFill(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"512", 512},
		{"1024", 1024},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			pm := filled(bm.size, bm.size, White)
			colors := [2]Color{Red, White}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Fill(pm, 0, 0, colors[i%2])
			}
		})
	}
}
