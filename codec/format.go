// Package codec reads and writes canvas images.
//
// Supported output formats are PNG, JPEG, BMP, TIFF, lossless WebP and
// single-page PDF. Input additionally accepts GIF and TGA so any common
// image can be opened as a canvas background.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Sentinel errors for the codec package.
var (
	// ErrUnknownFormat is returned for format names or file extensions
	// that have no encoder.
	ErrUnknownFormat = errors.New("codec: unknown image format")

	// ErrEmptyImage is returned when encoding an image with no pixels.
	ErrEmptyImage = errors.New("codec: image has no pixels")
)

// Format identifies an output encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	WebP
	PDF
)

var formatNames = [...]string{
	PNG:  "png",
	JPEG: "jpeg",
	BMP:  "bmp",
	TIFF: "tiff",
	WebP: "webp",
	PDF:  "pdf",
}

var formatAliases = map[string]Format{
	"jpg": JPEG,
	"tif": TIFF,
}

// Formats returns every output format.
func Formats() []Format {
	return []Format{PNG, JPEG, BMP, TIFF, WebP, PDF}
}

// String returns the canonical lowercase name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat returns the format with the given name or extension.
// Matching ignores case and a leading dot; "jpg" and "tif" are accepted.
func ParseFormat(name string) (Format, error) {
	key := cases.Fold().String(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for i, n := range formatNames {
		if n == key {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}
