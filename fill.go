package sketchpad

// Fill repaints the region of pixels 4-connected to (x, y) whose RGB equals
// the RGB of the seed pixel. Repainted pixels take fc's RGB with alpha
// forced to 255. It returns the number of pixels repainted.
//
// Fill is a no-op when the seed lies outside the buffer or when the seed
// already RGB-matches fc. Alpha never takes part in matching.
func Fill(buf Buffer, x, y int, fc Color) int {
	if !inBounds(buf, x, y) {
		return 0
	}

	target := buf.Pixel(x, y)
	if target.MatchRGB(fc) {
		return 0
	}
	fc = fc.Opaque()

	w, h := buf.Width(), buf.Height()
	visited := newBitmap(w * h)
	stack := make([]int, 0, 64)
	stack = append(stack, y*w+x)

	n := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.get(i) {
			continue
		}

		cx, cy := i%w, i/w
		if !buf.Pixel(cx, cy).MatchRGB(target) {
			continue
		}
		visited.set(i)
		buf.SetPixel(cx, cy, fc)
		n++

		if cx+1 < w {
			stack = append(stack, i+1)
		}
		if cx > 0 {
			stack = append(stack, i-1)
		}
		if cy+1 < h {
			stack = append(stack, i+w)
		}
		if cy > 0 {
			stack = append(stack, i-w)
		}
	}

	Logger().Debug("fill", "x", x, "y", y, "target", target, "color", fc, "pixels", n)
	return n
}

// FillHex parses hex and fills from (x, y) with the resulting color.
// A malformed color yields a *ColorParseError and leaves buf untouched.
func FillHex(buf Buffer, x, y int, hex string) (int, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return Fill(buf, x, y, c), nil
}

// bitmap is a fixed-size set of pixel indices.
type bitmap []uint64

func newBitmap(n int) bitmap {
	return make(bitmap, (n+63)/64)
}

func (b bitmap) get(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitmap) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}
