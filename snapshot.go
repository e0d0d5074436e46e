package sketchpad

// Snapshot is an immutable copy of a buffer's pixels at one point in time.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// Capture copies the full contents of buf. Later writes to buf do not
// affect the returned snapshot.
func Capture(buf Buffer) *Snapshot {
	src := buf.Pix()
	pix := make([]uint8, len(src))
	copy(pix, src)
	return &Snapshot{width: buf.Width(), height: buf.Height(), pix: pix}
}

// Width returns the width of the captured buffer.
func (s *Snapshot) Width() int { return s.width }

// Height returns the height of the captured buffer.
func (s *Snapshot) Height() int { return s.height }

// Restore writes every pixel of snap back into buf in one SetPix call.
// Nothing is written when snap is nil or its dimensions differ from buf.
func Restore(buf Buffer, snap *Snapshot) error {
	if snap == nil {
		return ErrNoSnapshot
	}
	if snap.width != buf.Width() || snap.height != buf.Height() {
		return ErrSnapshotSize
	}
	buf.SetPix(snap.pix)
	return nil
}
