package sense

import "tempdisplay-go/x/mathx"

// MaxWindowDepth bounds the moving-average depth; the backing store is a
// fixed array so a Window never allocates.
const MaxWindowDepth = 8

// Window is a fixed-depth moving-average buffer of filtered samples.
// It has value semantics: Push returns the successor state and leaves the
// receiver untouched. Slots start at zero, so the first depth-1 means are
// biased low; that cold-start behaviour is accepted, not corrected.
type Window struct {
	slots [MaxWindowDepth]uint16
	depth uint8
}

// NewWindow returns an empty window of the given depth, clamped to
// [1, MaxWindowDepth].
func NewWindow(depth int) Window {
	return Window{depth: uint8(mathx.Clamp(depth, 1, MaxWindowDepth))}
}

// Depth returns the configured depth.
func (w Window) Depth() int { return int(w.depth) }

// Push evicts the oldest slot and appends v at the newest position.
func (w Window) Push(v uint16) Window {
	n := int(w.depth)
	copy(w.slots[:n-1], w.slots[1:n])
	w.slots[n-1] = v
	return w
}

// Mean returns the truncated integer mean of all slots. Power-of-two depths
// reduce to a shift.
func (w Window) Mean() uint16 {
	sum := w.sum()
	if mathx.IsPow2(int(w.depth)) {
		shift := uint(0)
		for 1<<shift < int(w.depth) {
			shift++
		}
		return uint16(sum >> shift)
	}
	return uint16(sum / uint32(w.depth))
}

// MeanF32 returns the exact mean with the fractional part kept.
func (w Window) MeanF32() float32 {
	return float32(w.sum()) / float32(w.depth)
}

// Smoothed returns the value handed to unit conversion. Power-of-two depths
// truncate at this stage (shift mean); other depths keep the fraction into
// the conversion. The rounding asymmetry between the two deployment profiles
// is deliberate and must not be unified.
func (w Window) Smoothed() float32 {
	if mathx.IsPow2(int(w.depth)) {
		return float32(w.Mean())
	}
	return w.MeanF32()
}

func (w Window) sum() uint32 {
	var sum uint32
	for _, v := range w.slots[:w.depth] {
		sum += uint32(v)
	}
	return sum
}
