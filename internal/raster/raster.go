// Package raster turns stroked outlines into pixels.
//
// Each shape is expanded into closed fill paths (offset by half the stroke
// width on either side of the centre line), rasterized into an anti-aliased
// coverage mask with golang.org/x/image/vector, and composited onto the
// destination with the Over operator.
//
// Paths rely on the rasterizer's nonzero accumulation: an outer contour and
// an inner contour of opposite orientation leave the interior uncovered.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

// Line strokes the segment (x0,y0)-(x1,y1) with round caps.
// Every function composites with op (draw.Over or draw.Src).
func Line(dst draw.Image, x0, y0, x1, y1, width float64, c color.Color, op draw.Op) {
	r := halfWidth(width)
	bounds := boundsOf(math.Min(x0, x1)-r, math.Min(y0, y1)-r, math.Max(x0, x1)+r, math.Max(y0, y1)+r)

	p := newPainter(dst, bounds)
	if p == nil {
		return
	}
	p.capsule(x0, y0, x1, y1, r)
	p.composite(c, op)
}

// Rectangle strokes the axis-aligned box with corners (x0,y0) and (x1,y1),
// given in any order. Corners are square.
func Rectangle(dst draw.Image, x0, y0, x1, y1, width float64, c color.Color, op draw.Op) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r := halfWidth(width)

	p := newPainter(dst, boundsOf(x0-r, y0-r, x1+r, y1+r))
	if p == nil {
		return
	}
	p.box(x0-r, y0-r, x1+r, y1+r, true)
	if x1-x0 > 2*r && y1-y0 > 2*r {
		p.box(x0+r, y0+r, x1-r, y1-r, false)
	}
	p.composite(c, op)
}

// Circle strokes the circle centred on (cx,cy) with the given radius.
func Circle(dst draw.Image, cx, cy, radius, width float64, c color.Color, op draw.Op) {
	r := halfWidth(width)
	outer := math.Abs(radius) + r

	p := newPainter(dst, boundsOf(cx-outer, cy-outer, cx+outer, cy+outer))
	if p == nil {
		return
	}
	p.circle(cx, cy, outer, true)
	if inner := math.Abs(radius) - r; inner > 0 {
		p.circle(cx, cy, inner, false)
	}
	p.composite(c, op)
}

func halfWidth(width float64) float64 {
	if width < 1 || math.IsNaN(width) {
		width = 1
	}
	return width / 2
}

// boundsOf returns the pixel rectangle covering the given float extents,
// padded by one pixel for anti-aliasing.
func boundsOf(minX, minY, maxX, maxY float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(minX))-1,
		int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1,
		int(math.Ceil(maxY))+1,
	)
}

// painter accumulates paths for one shape in a rasterizer sized to the
// shape's clipped bounding box.
type painter struct {
	dst    draw.Image
	bounds image.Rectangle
	z      *vector.Rasterizer
	ox, oy float64
}

// newPainter returns nil when bounds do not intersect dst.
func newPainter(dst draw.Image, bounds image.Rectangle) *painter {
	bounds = bounds.Intersect(dst.Bounds())
	if bounds.Empty() {
		return nil
	}
	return &painter{
		dst:    dst,
		bounds: bounds,
		z:      vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		ox:     float64(bounds.Min.X),
		oy:     float64(bounds.Min.Y),
	}
}

func (p *painter) moveTo(x, y float64) {
	p.z.MoveTo(float32(x-p.ox), float32(y-p.oy))
}

func (p *painter) lineTo(x, y float64) {
	p.z.LineTo(float32(x-p.ox), float32(y-p.oy))
}

func (p *painter) cubeTo(x1, y1, x2, y2, x, y float64) {
	p.z.CubeTo(
		float32(x1-p.ox), float32(y1-p.oy),
		float32(x2-p.ox), float32(y2-p.oy),
		float32(x-p.ox), float32(y-p.oy),
	)
}

// quarter appends a quarter-circle arc around (cx,cy) from the radius
// vector (ax,ay) to the perpendicular radius vector (bx,by).
func (p *painter) quarter(cx, cy, ax, ay, bx, by float64) {
	p.cubeTo(
		cx+ax+bx*kappa, cy+ay+by*kappa,
		cx+bx+ax*kappa, cy+by+ay*kappa,
		cx+bx, cy+by,
	)
}

// capsule adds the round-capped outline of a segment of half-width r.
func (p *painter) capsule(x0, y0, x1, y1, r float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		p.circle(x0, y0, r, true)
		return
	}
	// Unit direction scaled to r, and its normal.
	dx, dy = dx/length*r, dy/length*r
	nx, ny := -dy, dx

	p.moveTo(x0+nx, y0+ny)
	p.lineTo(x1+nx, y1+ny)
	p.quarter(x1, y1, nx, ny, dx, dy)
	p.quarter(x1, y1, dx, dy, -nx, -ny)
	p.lineTo(x0-nx, y0-ny)
	p.quarter(x0, y0, -nx, -ny, -dx, -dy)
	p.quarter(x0, y0, -dx, -dy, nx, ny)
	p.z.ClosePath()
}

// box adds a rectangle contour, clockwise in screen space when cw is set.
func (p *painter) box(x0, y0, x1, y1 float64, cw bool) {
	p.moveTo(x0, y0)
	if cw {
		p.lineTo(x1, y0)
		p.lineTo(x1, y1)
		p.lineTo(x0, y1)
	} else {
		p.lineTo(x0, y1)
		p.lineTo(x1, y1)
		p.lineTo(x1, y0)
	}
	p.z.ClosePath()
}

// circle adds a circle contour, clockwise in screen space when cw is set.
func (p *painter) circle(cx, cy, r float64, cw bool) {
	sy := r
	if !cw {
		sy = -r
	}
	p.moveTo(cx+r, cy)
	p.quarter(cx, cy, r, 0, 0, sy)
	p.quarter(cx, cy, 0, sy, -r, 0)
	p.quarter(cx, cy, -r, 0, 0, -sy)
	p.quarter(cx, cy, 0, -sy, r, 0)
	p.z.ClosePath()
}

// composite paints c through the accumulated coverage onto dst. With
// draw.Src, covered pixels move toward c by their coverage, so a
// translucent c lowers alpha where draw.Over could only raise it.
func (p *painter) composite(c color.Color, op draw.Op) {
	mask := image.NewAlpha(image.Rect(0, 0, p.bounds.Dx(), p.bounds.Dy()))
	p.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(p.dst, p.bounds, image.NewUniform(c), image.Point{}, mask, image.Point{}, op)
}
