package sketchpad

import (
	"image/draw"

	"github.com/gogpu/sketchpad/internal/raster"
)

// Stroke describes how an outline is painted.
type Stroke struct {
	Color Color
	Width float64

	// Op composites the outline onto the buffer. The zero value is
	// draw.Over; draw.Src replaces covered pixels, alpha included.
	Op draw.Op
}

// Renderer draws shape outlines into a buffer. Only the outline is
// painted; interiors are left untouched.
//
// Implementations must be deterministic: the same call on the same buffer
// contents produces the same pixels.
type Renderer interface {
	// Line strokes the segment from p0 to p1 with round caps.
	// When p0 == p1 a dot of diameter s.Width is painted.
	Line(dst Buffer, p0, p1 Point, s Stroke)

	// Rectangle strokes the axis-aligned box with opposite corners p0 and
	// p1. The corners may be given in any order.
	Rectangle(dst Buffer, p0, p1 Point, s Stroke)

	// Ellipse strokes the circle with the given center and radius.
	Ellipse(dst Buffer, center Point, radius float64, s Stroke)
}

// DefaultRenderer returns the anti-aliased software renderer.
func DefaultRenderer() Renderer {
	return softwareRenderer{}
}

// softwareRenderer rasterizes outlines on the CPU with internal/raster.
type softwareRenderer struct{}

func (softwareRenderer) Line(dst Buffer, p0, p1 Point, s Stroke) {
	raster.Line(Image(dst), p0.X, p0.Y, p1.X, p1.Y, s.Width, s.Color.NRGBA(), s.Op)
}

func (softwareRenderer) Rectangle(dst Buffer, p0, p1 Point, s Stroke) {
	raster.Rectangle(Image(dst), p0.X, p0.Y, p1.X, p1.Y, s.Width, s.Color.NRGBA(), s.Op)
}

func (softwareRenderer) Ellipse(dst Buffer, center Point, radius float64, s Stroke) {
	raster.Circle(Image(dst), center.X, center.Y, radius, s.Width, s.Color.NRGBA(), s.Op)
}
