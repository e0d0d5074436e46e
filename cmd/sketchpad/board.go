package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketchpad"
)

// board shows the canvas pixmap and feeds pointer input to the session.
type board struct {
	widget.BaseWidget

	session *sketchpad.Session
	pm      *sketchpad.Pixmap
	img     *canvas.Image

	// OnError is called when a gesture fails.
	OnError func(error)
}

var _ fyne.Widget = (*board)(nil)
var _ fyne.Draggable = (*board)(nil)
var _ desktop.Mouseable = (*board)(nil)
var _ desktop.Hoverable = (*board)(nil)

func newBoard(s *sketchpad.Session, pm *sketchpad.Pixmap) *board {
	b := &board{session: s, pm: pm}
	b.img = canvas.NewImageFromImage(pm.View())
	b.img.FillMode = canvas.ImageFillStretch
	b.img.ScaleMode = canvas.ImageScalePixels
	b.img.SetMinSize(fyne.NewSize(float32(pm.Width()), float32(pm.Height())))
	b.ExtendBaseWidget(b)
	return b
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.img)
}

// toCanvas maps a widget position to pixmap coordinates. The image is
// stretched over the widget, so the scale can differ per axis.
func (b *board) toCanvas(p fyne.Position) (float64, float64) {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return float64(p.X), float64(p.Y)
	}
	return float64(p.X) * float64(b.pm.Width()) / float64(size.Width),
		float64(p.Y) * float64(b.pm.Height()) / float64(size.Height)
}

// redraw pushes the pixmap to the screen and reports err, if any.
func (b *board) redraw(err error) {
	canvas.Refresh(b.img)
	if err != nil && b.OnError != nil {
		b.OnError(err)
	}
}

func (b *board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := b.toCanvas(e.Position)
	b.redraw(b.session.PointerDown(x, y))
}

func (b *board) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.session.Active() {
		return
	}
	b.redraw(b.session.PointerUp())
}

func (b *board) MouseIn(*desktop.MouseEvent) {}

func (b *board) MouseMoved(e *desktop.MouseEvent) {
	if !b.session.Active() {
		return
	}
	x, y := b.toCanvas(e.Position)
	b.redraw(b.session.PointerMove(x, y))
}

func (b *board) MouseOut() {
	if !b.session.Active() {
		return
	}
	b.redraw(b.session.PointerLeave())
}

func (b *board) Dragged(e *fyne.DragEvent) {
	if !b.session.Active() {
		return
	}
	x, y := b.toCanvas(e.Position)
	b.redraw(b.session.PointerMove(x, y))
}

func (b *board) DragEnd() {
	if !b.session.Active() {
		return
	}
	b.redraw(b.session.PointerUp())
}

// Clear paints the canvas with the background color.
func (b *board) Clear() {
	b.session.Clear()
	b.redraw(nil)
}

// Replace aborts any gesture and loads pix, already sized to the canvas.
func (b *board) Replace(pix []uint8) {
	b.session.Clear()
	b.pm.SetPix(pix)
	b.redraw(nil)
}
