package sketchpad

import "github.com/google/uuid"

// Session binds a buffer to the drawing tools and runs gestures on it.
//
// A Session holds the tool configuration, the gesture state and the
// snapshot of the gesture in progress. It is not safe for concurrent use;
// hosts deliver events from a single goroutine.
type Session struct {
	buf      Buffer
	renderer Renderer
	settings Settings

	state    State
	snapshot *Snapshot
	gesture  uuid.UUID
}

// NewSession creates a session drawing into buf.
// The buffer contents are left as they are; call Clear to paint the
// background.
func NewSession(buf Buffer, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.settings.Width < 1 {
		return nil, ErrInvalidWidth
	}
	if o.renderer == nil {
		o.renderer = DefaultRenderer()
	}

	return &Session{
		buf:      buf,
		renderer: o.renderer,
		settings: o.settings,
		state:    State{Phase: Idle, Settings: o.settings},
	}, nil
}

// Buffer returns the buffer the session draws into.
func (s *Session) Buffer() Buffer { return s.buf }

// Settings returns the configuration the next gesture will start with.
func (s *Session) Settings() Settings { return s.settings }

// State returns the current gesture state.
func (s *Session) State() State { return s.state }

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool { return s.state.Phase == Active }

// Snapshot returns the snapshot of the gesture in progress, or nil.
func (s *Session) Snapshot() *Snapshot { return s.snapshot }

// GestureID returns the identifier of the current or most recent gesture.
func (s *Session) GestureID() uuid.UUID { return s.gesture }

// SetTool selects the tool used by the next gesture.
func (s *Session) SetTool(t Tool) { s.settings.Tool = t }

// SetColor selects the color used by the next gesture.
func (s *Session) SetColor(c Color) { s.settings.Color = c }

// SetWidth sets the stroke width used by the next gesture.
func (s *Session) SetWidth(w int) error {
	if w < 1 {
		return ErrInvalidWidth
	}
	s.settings.Width = w
	return nil
}

// SetBackground sets the color used by the eraser and by Clear.
func (s *Session) SetBackground(c Color) { s.settings.Background = c }

// PointerDown starts a gesture at (x, y).
func (s *Session) PointerDown(x, y float64) error {
	return s.Handle(Event{Kind: PointerDown, Pos: Pt(x, y)})
}

// PointerMove continues the gesture at (x, y).
func (s *Session) PointerMove(x, y float64) error {
	return s.Handle(Event{Kind: PointerMove, Pos: Pt(x, y)})
}

// PointerUp ends the gesture.
func (s *Session) PointerUp() error {
	return s.Handle(Event{Kind: PointerUp})
}

// PointerLeave ends the gesture because the pointer left the canvas.
// The last preview stays on the canvas.
func (s *Session) PointerLeave() error {
	return s.Handle(Event{Kind: PointerLeave})
}

// Handle runs one event through the gesture state machine and applies the
// resulting effects to the buffer.
//
// The only failure is a snapshot that no longer fits the buffer (the host
// resized it mid-gesture). The gesture is then abandoned and the error is
// returned.
func (s *Session) Handle(ev Event) error {
	prev := s.state.Phase
	next, effects := Step(s.state, s.settings, ev)

	if ev.Kind == PointerDown {
		s.gesture = uuid.New()
		Logger().Debug("gesture begin",
			"gesture", s.gesture, "tool", next.Settings.Tool, "x", ev.Pos.X, "y", ev.Pos.Y)
	}

	for _, e := range effects {
		if err := s.apply(e); err != nil {
			Logger().Warn("gesture abandoned", "gesture", s.gesture, "err", err)
			s.snapshot = nil
			s.state = State{Phase: Idle, Settings: next.Settings}
			return err
		}
	}
	s.state = next

	if prev == Active && next.Phase == Idle && ev.Kind != PointerDown {
		Logger().Debug("gesture end", "gesture", s.gesture, "event", ev.Kind)
	}
	return nil
}

func (s *Session) apply(e Effect) error {
	switch e.Kind {
	case EffectCapture:
		s.snapshot = Capture(s.buf)
	case EffectRestore:
		return Restore(s.buf, s.snapshot)
	case EffectRelease:
		s.snapshot = nil
	case EffectFill:
		x, y := e.From.Pixel()
		Fill(s.buf, x, y, e.Stroke.Color)
	case EffectLine:
		s.renderer.Line(s.buf, e.From, e.To, e.Stroke)
	case EffectRectangle:
		s.renderer.Rectangle(s.buf, e.From, e.To, e.Stroke)
	case EffectEllipse:
		s.renderer.Ellipse(s.buf, e.From, e.Radius, e.Stroke)
	}
	return nil
}

// Clear ends any gesture in progress and paints the whole buffer with the
// background color.
func (s *Session) Clear() {
	s.snapshot = nil
	s.state = State{Phase: Idle, Settings: s.state.Settings}

	bg := s.settings.Background
	if pm, ok := s.buf.(*Pixmap); ok {
		pm.Clear(bg)
		return
	}
	pix := make([]uint8, s.buf.Width()*s.buf.Height()*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	s.buf.SetPix(pix)
}
