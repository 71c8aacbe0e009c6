package display

import (
	"context"
	"time"

	"tempdisplay-go/errcode"
	"tempdisplay-go/x/fmtx"
	"tempdisplay-go/x/shmcell"
)

// RefreshPeriod throttles redraws. The sampler publishes once a second, so a
// 200 ms cadence keeps the panel fresh without saturating the bus.
const RefreshPeriod = 200 * time.Millisecond

// Refresher redraws the latest published reading at a fixed cadence. It is
// the sole reader of the cell; a snapshot is at worst one sampling period
// behind and never torn.
type Refresher struct {
	cell   *shmcell.Cell
	scr    Screen
	format FormatFunc
	buf    [16]byte // render scratch, reused across frames
}

// NewRefresher wires the refresh loop. format chooses the wide or compact
// layout per deployment profile.
func NewRefresher(cell *shmcell.Cell, scr Screen, format FormatFunc) *Refresher {
	return &Refresher{cell: cell, scr: scr, format: format}
}

// RedrawOnce renders one frame: snapshot, clear, two lines, flush.
func (r *Refresher) RedrawOnce() error {
	rd := r.cell.Snapshot()
	r.scr.ClearRegion()

	line := r.format(r.buf[:0], rd.DeciC, 'C')
	if err := r.scr.DrawLine(LineCelsius, string(line)); err != nil {
		return &errcode.E{C: errcode.DisplayError, Op: "draw", Err: err}
	}
	line = r.format(r.buf[:0], rd.DeciF, 'F')
	if err := r.scr.DrawLine(LineFahrenheit, string(line)); err != nil {
		return &errcode.E{C: errcode.DisplayError, Op: "draw", Err: err}
	}
	if err := r.scr.Flush(); err != nil {
		return &errcode.E{C: errcode.DisplayError, Op: "flush", Err: err}
	}
	return nil
}

// Run redraws until ctx is cancelled. Display errors are traced and the loop
// keeps going; the panel is a best-effort output with no error channel of
// its own.
func (r *Refresher) Run(ctx context.Context) {
	t := time.NewTicker(RefreshPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := r.RedrawOnce(); err != nil {
				fmtx.Printf("display: redraw failed: %v\n", err)
			}
		}
	}
}
