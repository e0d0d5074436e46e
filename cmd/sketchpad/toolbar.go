package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/codec"
)

// colorSwatch is a tappable square of one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    sketchpad.Color
	OnTapped func(sketchpad.Color)
}

func newColorSwatch(c sketchpad.Color, tapped func(sketchpad.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var imageFilter = storage.NewExtensionFileFilter([]string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".tga",
})

// setColor makes c the stroke color for the next gesture.
func setColor(s *sketchpad.Session, status *widget.Label, c color.Color) {
	sc := sketchpad.FromColor(c)
	s.SetColor(sc)
	status.SetText("Color: " + sc.Hex())
}

// confirmClear returns the answer handler of the clear confirmation.
func confirmClear(b *board, status *widget.Label) func(bool) {
	return func(ok bool) {
		if !ok {
			return
		}
		b.Clear()
		status.SetText("Cleared")
	}
}

// newToolbar builds the tool, color and width controls for b.
func newToolbar(win fyne.Window, b *board, status *widget.Label) fyne.CanvasObject {
	s := b.session

	names := make([]string, 0, len(sketchpad.Tools()))
	for _, t := range sketchpad.Tools() {
		names = append(names, t.String())
	}
	tools := widget.NewRadioGroup(names, func(name string) {
		if t, err := sketchpad.ParseTool(name); err == nil {
			s.SetTool(t)
			status.SetText("Tool: " + name)
		}
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(s.Settings().Tool.String())

	swatches := container.NewHBox()
	for _, c := range sketchpad.Palette {
		swatches.Add(newColorSwatch(c, func(c sketchpad.Color) {
			setColor(s, status, c)
		}))
	}
	customButton := widget.NewButton("Custom…", func() {
		picker := dialog.NewColorPicker("Stroke color", "Pick any color", func(c color.Color) {
			setColor(s, status, c)
		}, win)
		picker.Advanced = true
		picker.SetColor(s.Settings().Color)
		picker.Show()
	})

	width := widget.NewSlider(1, 50)
	width.Step = 1
	width.SetValue(float64(s.Settings().Width))
	width.OnChanged = func(v float64) {
		if err := s.SetWidth(int(v)); err == nil {
			status.SetText(fmt.Sprintf("Width: %d", int(v)))
		}
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), width)

	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Clear canvas", "Are you sure you want to clear the entire canvas?",
			confirmClear(b, status), win)
	})
	openButton := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			defer r.Close()
			img, _, err := codec.Decode(r)
			if err != nil {
				dialog.ShowError(err, win)
				return
			}
			b.Replace(codec.Fit(img, b.pm.Width(), b.pm.Height()).Pix)
			status.SetText("Opened " + r.URI().Name())
		}, win)
		d.SetFilter(imageFilter)
		d.Show()
	})
	saveButton := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil || w == nil {
				return
			}
			f, err := codec.ParseFormat(w.URI().Extension())
			if err != nil {
				f = codec.PNG
			}
			if err := codec.Encode(w, b.pm.ToImage(), f); err != nil {
				w.Close()
				dialog.ShowError(err, win)
				return
			}
			if err := w.Close(); err != nil {
				dialog.ShowError(err, win)
				return
			}
			status.SetText(fmt.Sprintf("Saved %s as %v", w.URI().Name(), f))
		}, win)
		d.SetFileName("sketch.png")
		d.Show()
	})

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Tool:"), tools, layout.NewSpacer(), openButton, saveButton, clearButton),
		container.NewHBox(
			widget.NewLabel("Color:"), swatches, customButton,
			widget.NewSeparator(),
			widget.NewLabel("Size:"), widthBox,
		),
	)
}
