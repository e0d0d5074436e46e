package sketchpad

// Option configures a Session during creation.
//
// Example:
//
//	s, err := sketchpad.NewSession(pm,
//	    sketchpad.WithTool(sketchpad.ToolRectangle),
//	    sketchpad.WithColor(sketchpad.Red),
//	    sketchpad.WithWidth(5),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	settings Settings
	renderer Renderer
}

// defaultOptions returns the default session options: a 3px black pencil
// on a white background.
func defaultOptions() options {
	return options{
		settings: Settings{
			Tool:       ToolPencil,
			Color:      Black,
			Width:      3,
			Background: White,
		},
		renderer: nil, // Will be set to DefaultRenderer if nil
	}
}

// WithTool sets the initial tool.
func WithTool(t Tool) Option {
	return func(o *options) {
		o.settings.Tool = t
	}
}

// WithColor sets the initial stroke and fill color.
func WithColor(c Color) Option {
	return func(o *options) {
		o.settings.Color = c
	}
}

// WithWidth sets the initial stroke width in pixels. NewSession rejects
// widths below 1 with ErrInvalidWidth.
func WithWidth(w int) Option {
	return func(o *options) {
		o.settings.Width = w
	}
}

// WithBackground sets the color painted by the eraser and by Clear.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.settings.Background = c
	}
}

// WithRenderer sets a custom outline renderer.
// Use this to route shape drawing to a different backend.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}
