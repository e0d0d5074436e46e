package sketchpad

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is the mutable pixel grid the core paints into.
//
// The rendering backend owns the storage; the core only reads and writes it
// by coordinate or as a whole. Coordinates outside [0,Width) x [0,Height)
// must be ignored by SetPixel and read as Transparent by Pixel.
type Buffer interface {
	Width() int
	Height() int

	// Pixel returns the color at (x, y).
	Pixel(x, y int) Color

	// SetPixel overwrites the color at (x, y).
	SetPixel(x, y int, c Color)

	// Pix returns the full pixel data, row-major RGBA, 4 bytes per pixel,
	// with no padding between rows. Callers must not retain or modify it.
	Pix() []uint8

	// SetPix replaces the full pixel data with a slice in the layout
	// returned by Pix. len(data) is always Width*Height*4. Implementations
	// copy data and must not keep a reference to it.
	SetPix(data []uint8)
}

// inBounds reports whether (x, y) addresses a pixel of b.
func inBounds(b Buffer, x, y int) bool {
	return x >= 0 && x < b.Width() && y >= 0 && y < b.Height()
}

// bufferImage adapts a Buffer to draw.Image so it can be used as a
// compositing target by the raster and codec packages.
type bufferImage struct {
	buf Buffer
}

// Image returns a draw.Image view of b. Pixmap values are returned as is.
func Image(b Buffer) draw.Image {
	if pm, ok := b.(*Pixmap); ok {
		return pm
	}
	return bufferImage{buf: b}
}

func (i bufferImage) ColorModel() color.Model { return color.NRGBAModel }

func (i bufferImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.buf.Width(), i.buf.Height())
}

func (i bufferImage) At(x, y int) color.Color { return i.buf.Pixel(x, y).NRGBA() }

func (i bufferImage) Set(x, y int, c color.Color) { i.buf.SetPixel(x, y, FromColor(c)) }
