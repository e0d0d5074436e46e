// Package script replays recorded drawing sessions.
//
// A script is a JSON document listing pointer events and settings changes
// in the order a host would deliver them:
//
//	{
//	  "steps": [
//	    {"op": "tool", "tool": "rectangle"},
//	    {"op": "color", "color": "#ff0000"},
//	    {"op": "down", "x": 10, "y": 10},
//	    {"op": "move", "x": 120, "y": 80},
//	    {"op": "up"}
//	  ]
//	}
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sketchpad"
)

// ErrUnknownOp is returned for steps with an unrecognised op.
var ErrUnknownOp = errors.New("script: unknown op")

// Op names.
const (
	OpDown       = "down"
	OpMove       = "move"
	OpUp         = "up"
	OpLeave      = "leave"
	OpTool       = "tool"
	OpColor      = "color"
	OpWidth      = "width"
	OpBackground = "background"
	OpClear      = "clear"
)

// Step is one entry of a script.
type Step struct {
	Op    string          `json:"op"`
	X     float64         `json:"x,omitempty"`
	Y     float64         `json:"y,omitempty"`
	Tool  *sketchpad.Tool `json:"tool,omitempty"`
	Color string          `json:"color,omitempty"`
	Width int             `json:"width,omitempty"`

	color sketchpad.Color
}

// Script is a parsed, validated list of steps.
type Script struct {
	Steps []Step `json:"steps"`
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i, err)
		}
	}
	return &s, nil
}

// Load parses the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

func (st *Step) validate() error {
	switch st.Op {
	case OpDown, OpMove, OpUp, OpLeave, OpClear:
		return nil
	case OpTool:
		if st.Tool == nil {
			return errors.New("tool step without tool")
		}
		return nil
	case OpColor, OpBackground:
		c, err := sketchpad.ParseHex(st.Color)
		if err != nil {
			return err
		}
		st.color = c
		return nil
	case OpWidth:
		if st.Width < 1 {
			return sketchpad.ErrInvalidWidth
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
}

// Run applies every step to s in order and stops at the first error.
func (sc *Script) Run(s *sketchpad.Session) error {
	for i, st := range sc.Steps {
		if err := st.apply(s); err != nil {
			return fmt.Errorf("script: step %d (%s): %w", i, st.Op, err)
		}
	}
	sketchpad.Logger().Debug("script done", "steps", len(sc.Steps))
	return nil
}

func (st *Step) apply(s *sketchpad.Session) error {
	switch st.Op {
	case OpDown:
		return s.PointerDown(st.X, st.Y)
	case OpMove:
		return s.PointerMove(st.X, st.Y)
	case OpUp:
		return s.PointerUp()
	case OpLeave:
		return s.PointerLeave()
	case OpTool:
		s.SetTool(*st.Tool)
	case OpColor:
		s.SetColor(st.color)
	case OpBackground:
		s.SetBackground(st.color)
	case OpWidth:
		return s.SetWidth(st.Width)
	case OpClear:
		s.Clear()
	}
	return nil
}
