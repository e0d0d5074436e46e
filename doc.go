// Package sketchpad provides the drawing core of a raster paint surface.
//
// # Overview
//
// sketchpad paints freehand strokes, shape outlines and flood fills into a
// pixel Buffer owned by the host. It has no display or input code of its
// own: a host maps its pointer events into buffer coordinates and feeds them
// to a Session, then presents the buffer however it likes.
//
// # Quick Start
//
//	pm := sketchpad.NewPixmap(800, 600)
//	s, _ := sketchpad.NewSession(pm, sketchpad.WithTool(sketchpad.ToolRectangle))
//	s.Clear()
//
//	s.PointerDown(10, 10)
//	s.PointerMove(120, 80) // preview
//	s.PointerMove(200, 150) // previous preview erased, new one drawn
//	s.PointerUp()
//
// # Flood Fill
//
// Fill repaints the 4-connected region around a seed whose pixels share the
// seed's RGB. Alpha is ignored when matching and forced to 255 when
// painting. The traversal uses an explicit stack and a visited bitmap, so
// large regions cost O(W×H) time and never recurse.
//
// # Shape Previews
//
// Line, rectangle and ellipse gestures Capture the buffer on pointer-down.
// Every pointer-move Restores that snapshot before drawing the new outline,
// so a dragged shape leaves no trail. Pointer-up or pointer-leave drops the
// snapshot and keeps whatever preview was last drawn.
//
// # Gesture State Machine
//
// Step is a pure function from (State, Settings, Event) to the next State
// and a list of Effects. Session applies the effects; tests can drive Step
// directly without a buffer.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the unit square starting at (x, y)
package sketchpad
