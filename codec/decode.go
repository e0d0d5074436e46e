package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type decoder struct {
	name   string
	match  func(head []byte) bool
	decode func(io.Reader) (image.Image, error)
}

func prefix(magic string) func([]byte) bool {
	return func(head []byte) bool { return bytes.HasPrefix(head, []byte(magic)) }
}

// decoders are tried in order against the file header. TGA has no
// signature and is the fallback.
var decoders = []decoder{
	{"png", prefix("\x89PNG\r\n\x1a\n"), png.Decode},
	{"jpeg", prefix("\xff\xd8"), jpeg.Decode},
	{"gif", prefix("GIF8"), gif.Decode},
	{"bmp", prefix("BM"), bmp.Decode},
	{"tiff", prefix("II*\x00"), tiff.Decode},
	{"tiff", prefix("MM\x00*"), tiff.Decode},
	{"webp", func(h []byte) bool {
		return len(h) >= 12 && string(h[:4]) == "RIFF" && string(h[8:12]) == "WEBP"
	}, webp.Decode},
}

// Decode reads an image from r and reports the name of its format.
//
// The format is detected from the data, not from image.RegisterFormat, so
// the result does not depend on which decoders other packages registered.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(12)

	name, decode := "tga", tga.Decode
	for _, d := range decoders {
		if d.match(head) {
			name, decode = d.name, d.decode
			break
		}
	}

	img, err := decode(br)
	if err != nil {
		return nil, name, fmt.Errorf("codec: decode %s: %w", name, err)
	}
	return img, name, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return img, nil
}

// Fit returns img as an NRGBA image of exactly w x h pixels. Images of a
// different size are scaled with Catmull-Rom resampling, ignoring aspect
// ratio.
func Fit(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	sb := img.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		draw.Draw(dst, dst.Bounds(), img, sb.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)
	return dst
}
