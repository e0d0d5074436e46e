package sketchpad

import "math"

// Point is a position in buffer space. Pixel (x, y) covers the unit square
// with top-left corner (x, y).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Pixel returns the integer pixel coordinates containing p.
func (p Point) Pixel() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
