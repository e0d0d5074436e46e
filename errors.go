package sketchpad

import "errors"

// Sentinel errors for the sketchpad package.
var (
	// ErrInvalidColor is matched by every *ColorParseError.
	ErrInvalidColor = errors.New("sketchpad: invalid color")

	// ErrNoSnapshot is returned when restoring without a captured snapshot.
	ErrNoSnapshot = errors.New("sketchpad: no snapshot")

	// ErrSnapshotSize is returned when a snapshot does not match the
	// dimensions of the buffer it is restored into.
	ErrSnapshotSize = errors.New("sketchpad: snapshot size mismatch")

	// ErrInvalidWidth is returned for a stroke width below 1.
	ErrInvalidWidth = errors.New("sketchpad: stroke width must be positive")

	// ErrUnknownTool is returned by ParseTool for unrecognised names.
	ErrUnknownTool = errors.New("sketchpad: unknown tool")
)

// ColorParseError is returned when a color string cannot be decoded.
type ColorParseError struct {
	Input string
}

func (e *ColorParseError) Error() string {
	return "sketchpad: cannot parse color " + quote(e.Input)
}

// Unwrap returns ErrInvalidColor so callers can use errors.Is.
func (e *ColorParseError) Unwrap() error {
	return ErrInvalidColor
}

func quote(s string) string {
	return "\"" + s + "\""
}
