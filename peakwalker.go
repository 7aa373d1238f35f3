package mmr

// PeakWalker is a cursor over the expected peak positions of an MMR,
// traversed left (highest) to right (smallest). Command 5 (mark peak) uses
// it to validate that a NODE entry being promoted to PEAK actually sits at
// an expected peak position.
type PeakWalker struct {
	mmrSize  uint64
	position uint64
	height   uint64
	present  bool
}

// NewPeakWalker initialises the cursor at the left most (highest) peak of
// an MMR of the given size. mmrSize must be > 0.
func NewPeakWalker(mmrSize uint64) *PeakWalker {
	pos, height := LeftPeak(mmrSize)
	return &PeakWalker{mmrSize: mmrSize, position: pos, height: height, present: true}
}

// Position returns the currently expected peak position. Only meaningful
// when Present is true.
func (w *PeakWalker) Position() uint64 {
	return w.position
}

// Present reports whether there is a currently expected peak left to match.
func (w *PeakWalker) Present() bool {
	return w.present
}

// Advance moves the cursor to the next peak to the right. Once Present is
// false, Advance is a no-op.
func (w *PeakWalker) Advance() {
	if !w.present {
		return
	}
	pos, height, ok := RightPeak(w.position, w.height, w.mmrSize)
	w.position, w.height, w.present = pos, height, ok
}
