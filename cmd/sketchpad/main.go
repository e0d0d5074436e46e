// Command sketchpad is a desktop raster drawing program.
//
// Usage:
//
//	sketchpad [-config sketch.json] [-width 1024 -height 768] [-image photo.jpg] [-debug]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Canvas width (default: 800)")
	height := flag.Int("height", 0, "Canvas height (default: 600)")
	background := flag.String("background", "", "Background color (default: #FFFFFF)")
	image := flag.String("image", "", "Image to open as the canvas")
	tool := flag.String("tool", "", "Initial tool (default: pencil)")
	col := flag.String("color", "", "Initial color (default: #000000)")
	stroke := flag.Int("stroke", 0, "Initial stroke width (default: 3)")
	debug := flag.Bool("debug", false, "Log gestures to stderr")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:      *width,
		Height:     *height,
		Background: *background,
		Image:      *image,
		Tool:       *tool,
		Color:      *col,
		StrokeSize: *stroke,
		Debug:      *debug,
	})

	if cfg.Debug {
		sketchpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	session, pm, err := cfg.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	win := a.NewWindow("Sketchpad")

	status := widget.NewLabel("Ready")
	b := newBoard(session, pm)
	b.OnError = func(err error) {
		status.SetText("Gesture cancelled")
		dialog.ShowError(err, win)
	}

	toolbar := newToolbar(win, b, status)
	win.SetContent(container.NewBorder(toolbar, status, nil, nil, b))
	win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)+120))
	win.ShowAndRun()
}
