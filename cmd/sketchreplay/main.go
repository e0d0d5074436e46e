// Command sketchreplay replays a recorded drawing script without a display
// and saves the resulting canvas.
//
// Usage:
//
//	sketchreplay -script strokes.json -output out.webp
//	sketchreplay -config sketch.json -script strokes.json -debug
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/codec"
	"github.com/gogpu/sketchpad/internal/config"
	"github.com/gogpu/sketchpad/internal/script"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scriptFile := flag.String("script", "", "Path to the event script (required)")
	width := flag.Int("width", 0, "Canvas width (default: 800)")
	height := flag.Int("height", 0, "Canvas height (default: 600)")
	background := flag.String("background", "", "Background color (default: #FFFFFF)")
	image := flag.String("image", "", "Background image, scaled to the canvas")
	output := flag.String("output", "", "Output file; format from extension (default: sketch.png)")
	debug := flag.Bool("debug", false, "Log gestures to stderr")

	flag.Parse()

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -script is required")
		flag.Usage()
		os.Exit(2)
	}

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
		Output:     *output,
		Debug:      *debug,
	})

	if cfg.Debug {
		sketchpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if _, err := codec.FormatFromPath(cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := script.Load(*scriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}

	session, pm, err := cfg.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := sc.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := codec.Save(cfg.Output, pm.ToImage()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replayed %d steps in %s\n", len(sc.Steps), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Saved %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
}
