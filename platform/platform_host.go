//go:build !rp2040

package platform

import (
	"tempdisplay-go/display"
	"tempdisplay-go/sense"
	"tempdisplay-go/x/fmtx"
	"tempdisplay-go/x/mathx"
)

// Host fakes: a synthetic TMP36 around room temperature and a terminal
// "panel". Useful for running the full pipeline without a board.

func setup(cfg Config) (sense.Acquirer, display.Screen, error) {
	fmtx.Printf("platform: host fakes, hold hint %v\n", cfg.SampleHold)
	return &fakeADC{counts: roomCounts}, &termScreen{}, nil
}

// ~23 °C: 730 mV at 3.3 V / 12 bit.
const roomCounts = 906

// fakeADC wanders slowly around room temperature with small per-conversion
// jitter, so trimming and smoothing have something to chew on.
type fakeADC struct {
	counts int
	step   uint32
	rng    uint32
}

func (f *fakeADC) Acquire() (uint16, error) {
	// Tiny LCG for deterministic jitter in [-3, +3].
	f.rng = f.rng*1664525 + 1013904223
	jitter := int((f.rng>>16)%7) - 3

	// Slow drift: one count every 64 conversions, direction from the LCG.
	f.step++
	if f.step%64 == 0 {
		if f.rng&1 == 0 {
			f.counts++
		} else {
			f.counts--
		}
	}

	v := mathx.Clamp(f.counts+jitter, 0, 4095)
	return uint16(v), nil
}

// termScreen renders both lines to the terminal on flush.
type termScreen struct {
	lines [2]string
}

func (s *termScreen) ClearRegion() {
	s.lines[0], s.lines[1] = "", ""
}

func (s *termScreen) DrawLine(line int, text string) error {
	if line < 0 || line >= len(s.lines) {
		return nil
	}
	s.lines[line] = text
	return nil
}

func (s *termScreen) Flush() error {
	_, err := fmtx.Printf("\r%s  %s", s.lines[0], s.lines[1])
	return err
}
