// Package config loads host settings for the sketchpad commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/codec"
)

// Config holds canvas and tool settings shared by the commands.
type Config struct {
	// Canvas
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Image      string `json:"image"`

	// Tools
	Tool       string `json:"tool"`
	Color      string `json:"color"`
	StrokeSize int    `json:"stroke_width"`

	// Output
	Output string `json:"output"`
	Debug  bool   `json:"debug"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width      int
	Height     int
	Background string
	Image      string
	Tool       string
	Color      string
	StrokeSize int
	Output     string
	Debug      bool
}

// Defaults.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#FFFFFF"
	DefaultTool       = "pencil"
	DefaultColor      = "#000000"
	DefaultStrokeSize = 3
	DefaultOutput     = "sketch.png"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Image != "" {
		c.Image = flags.Image
	}
	if flags.Tool != "" {
		c.Tool = flags.Tool
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.StrokeSize > 0 {
		c.StrokeSize = flags.StrokeSize
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Debug {
		c.Debug = true
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Tool == "" {
		c.Tool = DefaultTool
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.StrokeSize <= 0 {
		c.StrokeSize = DefaultStrokeSize
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Options converts the tool settings to session options.
// Call Resolve first; invalid names or colors are reported as errors.
func (c *Config) Options() ([]sketchpad.Option, error) {
	tool, err := sketchpad.ParseTool(c.Tool)
	if err != nil {
		return nil, fmt.Errorf("config: tool: %w", err)
	}
	col, err := sketchpad.ParseHex(c.Color)
	if err != nil {
		return nil, fmt.Errorf("config: color: %w", err)
	}
	bg, err := sketchpad.ParseHex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("config: background: %w", err)
	}
	return []sketchpad.Option{
		sketchpad.WithTool(tool),
		sketchpad.WithColor(col),
		sketchpad.WithWidth(c.StrokeSize),
		sketchpad.WithBackground(bg),
	}, nil
}

// NewSession creates the canvas pixmap and a session on it. The canvas is
// painted with the background, or with Image scaled to the canvas size
// when one is configured.
func (c *Config) NewSession() (*sketchpad.Session, *sketchpad.Pixmap, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, nil, err
	}
	pm := sketchpad.NewPixmap(c.Width, c.Height)
	s, err := sketchpad.NewSession(pm, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	s.Clear()

	if c.Image != "" {
		img, err := codec.Load(c.Image)
		if err != nil {
			return nil, nil, fmt.Errorf("config: background image: %w", err)
		}
		pm.SetPix(codec.Fit(img, c.Width, c.Height).Pix)
	}
	return s, pm, nil
}
