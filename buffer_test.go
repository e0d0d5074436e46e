package sketchpad

import (
	"image"
	"image/color"
	"testing"
)

// gridBuffer is a Buffer that is not a Pixmap. It stores colors per cell and
// counts writes so tests can observe how the core touches the backend.
type gridBuffer struct {
	w, h   int
	cells  []Color
	writes int
	puts   int
}

func newGridBuffer(w, h int, c Color) *gridBuffer {
	g := &gridBuffer{w: w, h: h, cells: make([]Color, w*h)}
	for i := range g.cells {
		g.cells[i] = c
	}
	return g
}

func (g *gridBuffer) Width() int  { return g.w }
func (g *gridBuffer) Height() int { return g.h }

func (g *gridBuffer) Pixel(x, y int) Color {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Transparent
	}
	return g.cells[y*g.w+x]
}

func (g *gridBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.writes++
	g.cells[y*g.w+x] = c
}

func (g *gridBuffer) Pix() []uint8 {
	pix := make([]uint8, 0, len(g.cells)*4)
	for _, c := range g.cells {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	return pix
}

func (g *gridBuffer) SetPix(data []uint8) {
	g.puts++
	for i := range g.cells {
		g.cells[i] = Color{R: data[i*4], G: data[i*4+1], B: data[i*4+2], A: data[i*4+3]}
	}
}

// resize changes the buffer dimensions, discarding its contents.
func (g *gridBuffer) resize(w, h int) {
	g.w, g.h = w, h
	g.cells = make([]Color, w*h)
}

func TestImage_PixmapReturnedAsIs(t *testing.T) {
	pm := NewPixmap(2, 2)
	if img := Image(pm); img != pm {
		t.Errorf("Image(*Pixmap) = %T, want the pixmap itself", img)
	}
}

func TestImage_AdaptsBuffer(t *testing.T) {
	g := newGridBuffer(3, 2, White)
	img := Image(g)

	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", got)
	}
	img.Set(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	if got := g.Pixel(1, 1); got != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Pixel(1,1) after Set = %v", got)
	}
	if got := img.At(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("At(0,0) = %v, want opaque white", got)
	}
}
