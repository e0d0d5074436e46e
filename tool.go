package sketchpad

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Tool selects what a gesture does to the buffer.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolLine
	ToolRectangle
	ToolEllipse
	ToolFill
)

var toolNames = [...]string{
	ToolPencil:    "pencil",
	ToolEraser:    "eraser",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolEllipse:   "ellipse",
	ToolFill:      "fill",
}

// aliases accepted by ParseTool in addition to the canonical names.
var toolAliases = map[string]Tool{
	"pen":    ToolPencil,
	"rect":   ToolRectangle,
	"circle": ToolEllipse,
	"bucket": ToolFill,
}

// Tools lists every tool in display order.
func Tools() []Tool {
	return []Tool{ToolPencil, ToolEraser, ToolLine, ToolRectangle, ToolEllipse, ToolFill}
}

// String returns the canonical lower-case name of t.
func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

// Freehand reports whether t paints continuously along the pointer path.
func (t Tool) Freehand() bool {
	return t == ToolPencil || t == ToolEraser
}

// Shape reports whether t draws a rubber-band preview and needs a snapshot.
func (t Tool) Shape() bool {
	return t == ToolLine || t == ToolRectangle || t == ToolEllipse
}

// ParseTool returns the tool with the given name. Matching is
// case-insensitive and accepts a few common aliases ("rect", "circle").
func ParseTool(name string) (Tool, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == key {
			return Tool(i), nil
		}
	}
	if t, ok := toolAliases[key]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTool, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tool) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tool) UnmarshalText(b []byte) error {
	v, err := ParseTool(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
