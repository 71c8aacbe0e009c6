package sense

import (
	"context"
	"time"

	"tempdisplay-go/errcode"
	"tempdisplay-go/types"
	"tempdisplay-go/x/fmtx"
	"tempdisplay-go/x/shmcell"
)

// Convert turns a smoothed (possibly fractional) count into a reading.
// The TMP36 driver provides the production implementation.
type Convert func(counts float32) types.TemperatureReading

// Sampler runs the per-period pipeline. It owns the acquisition handle and
// the moving-average window exclusively after construction; only the cell is
// shared with the display context.
type Sampler struct {
	prof    Profile
	src     Acquirer
	convert Convert
	cell    *shmcell.Cell
	win     Window
}

// NewSampler wires the pipeline together. The acquirer is handed off here and
// must not be used elsewhere afterwards.
func NewSampler(prof Profile, src Acquirer, convert Convert, cell *shmcell.Cell) *Sampler {
	return &Sampler{
		prof:    prof,
		src:     src,
		convert: convert,
		cell:    cell,
		win:     NewWindow(prof.WindowDepth),
	}
}

// Cycle runs one sampling period: acquire, filter, smooth, convert, publish.
// It blocks only on the ADC conversions themselves. A failed conversion
// forfeits the period's publication and leaves the window unchanged, so no
// partial batch ever reaches the filter.
func (s *Sampler) Cycle() error {
	var filtered uint16
	if s.prof.TrimmedBatch {
		var b Batch
		for i := range b {
			v, err := s.src.Acquire()
			if err != nil {
				return &errcode.E{C: errcode.ADCFailed, Op: "acquire", Err: err}
			}
			b[i] = v
		}
		filtered = b.TrimmedMean()
	} else {
		v, err := s.src.Acquire()
		if err != nil {
			return &errcode.E{C: errcode.ADCFailed, Op: "acquire", Err: err}
		}
		filtered = v
	}

	s.win = s.win.Push(filtered)
	s.cell.Publish(s.convert(s.win.Smoothed()))
	return nil
}

// Run drives Cycle at the profile period until ctx is cancelled. It stands in
// for the hardware sampling timer: the goroutine running it is the only
// writer of the window and the cell. A skipped cycle is traced, not fatal;
// the display keeps showing the previous reading.
func (s *Sampler) Run(ctx context.Context) {
	period := s.prof.Period
	if period <= 0 {
		period = time.Second
	}
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.Cycle(); err != nil {
				fmtx.Printf("sense: cycle skipped: %v\n", err)
			}
		}
	}
}
