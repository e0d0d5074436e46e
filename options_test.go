package sketchpad

import "testing"

// TestNewSessionDefault tests that NewSession uses the software renderer by default.
func TestNewSessionDefault(t *testing.T) {
	s, err := NewSession(NewPixmap(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.renderer.(softwareRenderer); !ok {
		t.Errorf("renderer = %T, want softwareRenderer", s.renderer)
	}
}

// TestNewSessionWithRenderer tests dependency injection of a custom renderer.
func TestNewSessionWithRenderer(t *testing.T) {
	mock := &recordingRenderer{}

	s, err := NewSession(NewPixmap(100, 100), WithRenderer(mock), WithTool(ToolLine))
	if err != nil {
		t.Fatal(err)
	}
	if s.renderer != Renderer(mock) {
		t.Error("renderer is not the injected mock renderer")
	}

	_ = s.PointerDown(10, 10)
	_ = s.PointerMove(50, 50)
	if len(mock.calls) != 1 || mock.calls[0] != "line" {
		t.Errorf("mock calls = %v, want [line]", mock.calls)
	}
}

// TestWithRendererNil tests that a nil renderer falls back to the default.
func TestWithRendererNil(t *testing.T) {
	s, err := NewSession(NewPixmap(10, 10), WithRenderer(nil))
	if err != nil {
		t.Fatal(err)
	}
	if s.renderer == nil {
		t.Error("renderer is nil, expected the default renderer")
	}
}

// TestOptionsApplyInOrder tests that later options override earlier ones.
func TestOptionsApplyInOrder(t *testing.T) {
	s, err := NewSession(NewPixmap(1, 1),
		WithColor(Red), WithWidth(8),
		WithColor(Green), WithTool(ToolEraser), WithBackground(Yellow),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{Tool: ToolEraser, Color: Green, Width: 8, Background: Yellow}
	if got := s.Settings(); got != want {
		t.Errorf("Settings() = %+v, want %+v", got, want)
	}
}
