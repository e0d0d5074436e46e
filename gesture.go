package sketchpad

import "image/draw"

// Phase is the position of the gesture state machine.
type Phase int

const (
	// Idle means no pointer is held down on the canvas.
	Idle Phase = iota
	// Active means a freehand or shape gesture is in progress.
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "idle"
}

// EventKind identifies a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

var eventNames = [...]string{"down", "move", "up", "leave"}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a pointer event in buffer coordinates. Pos is ignored for
// PointerUp and PointerLeave.
type Event struct {
	Kind EventKind
	Pos  Point
}

// Settings is the tool configuration read when a gesture starts.
type Settings struct {
	Tool       Tool
	Color      Color
	Width      int
	Background Color
}

// stroke returns the paint used by the settings' tool. The eraser replaces
// pixels with the background, alpha included, instead of painting over them.
func (s Settings) stroke() Stroke {
	if s.Tool == ToolEraser {
		return Stroke{Color: s.Background, Width: float64(s.Width), Op: draw.Src}
	}
	return Stroke{Color: s.Color, Width: float64(s.Width)}
}

// State is the gesture state carried between events.
type State struct {
	Phase Phase

	// Settings is frozen at pointer-down for the rest of the gesture.
	Settings Settings

	// Start is the pointer-down position, Last the latest pointer position.
	Start, Last Point
}

// EffectKind identifies a side effect requested by Step.
type EffectKind int

const (
	// EffectCapture takes the gesture snapshot.
	EffectCapture EffectKind = iota
	// EffectRestore copies the gesture snapshot back into the buffer.
	EffectRestore
	// EffectRelease drops the gesture snapshot.
	EffectRelease
	// EffectFill flood fills from From with Stroke.Color.
	EffectFill
	// EffectLine strokes From-To.
	EffectLine
	// EffectRectangle strokes the box with corners From and To.
	EffectRectangle
	// EffectEllipse strokes the circle centred on From with Radius.
	EffectEllipse
)

var effectNames = [...]string{"capture", "restore", "release", "fill", "line", "rectangle", "ellipse"}

func (k EffectKind) String() string {
	if k >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// Effect is one buffer operation produced by a state transition.
type Effect struct {
	Kind     EffectKind
	From, To Point
	Radius   float64
	Stroke   Stroke
}

// Step computes the transition for ev from s. It has no side effects: the
// caller applies the returned effects in order.
//
// Settings are consulted only on PointerDown. The fill tool completes
// within its pointer-down and leaves the machine Idle. Shape tools capture
// on pointer-down, and each move restores before drawing the new preview.
// PointerUp and PointerLeave both end the gesture and keep the last preview.
func Step(s State, cfg Settings, ev Event) (State, []Effect) {
	switch ev.Kind {
	case PointerDown:
		var effects []Effect
		if s.Phase == Active {
			// The previous gesture lost its pointer-up.
			s, effects = end(s)
		}
		next, started := begin(cfg, ev.Pos)
		return next, append(effects, started...)

	case PointerMove:
		if s.Phase != Active {
			return s, nil
		}
		return move(s, ev.Pos)

	case PointerUp, PointerLeave:
		if s.Phase != Active {
			return s, nil
		}
		return end(s)
	}
	return s, nil
}

func begin(cfg Settings, p Point) (State, []Effect) {
	st := cfg.stroke()
	switch {
	case cfg.Tool == ToolFill:
		return State{Phase: Idle, Settings: cfg}, []Effect{{Kind: EffectFill, From: p, Stroke: st}}
	case cfg.Tool.Shape():
		return State{Phase: Active, Settings: cfg, Start: p, Last: p}, []Effect{{Kind: EffectCapture}}
	default:
		return State{Phase: Active, Settings: cfg, Start: p, Last: p}, []Effect{{Kind: EffectLine, From: p, To: p, Stroke: st}}
	}
}

func move(s State, p Point) (State, []Effect) {
	st := s.Settings.stroke()
	from := s.Last
	s.Last = p

	switch s.Settings.Tool {
	case ToolLine:
		return s, []Effect{{Kind: EffectRestore}, {Kind: EffectLine, From: s.Start, To: p, Stroke: st}}
	case ToolRectangle:
		return s, []Effect{{Kind: EffectRestore}, {Kind: EffectRectangle, From: s.Start, To: p, Stroke: st}}
	case ToolEllipse:
		return s, []Effect{{Kind: EffectRestore}, {Kind: EffectEllipse, From: s.Start, To: p, Radius: s.Start.Distance(p), Stroke: st}}
	default:
		return s, []Effect{{Kind: EffectLine, From: from, To: p, Stroke: st}}
	}
}

func end(s State) (State, []Effect) {
	var effects []Effect
	if s.Settings.Tool.Shape() {
		effects = []Effect{{Kind: EffectRelease}}
	}
	return State{Phase: Idle, Settings: s.Settings}, effects
}
