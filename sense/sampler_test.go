package sense

import (
	"testing"

	"tempdisplay-go/drivers/tmp36"
	"tempdisplay-go/errcode"
	"tempdisplay-go/x/shmcell"
)

// scriptedADC replays values in order; failAt (1-based call number) injects a
// hardware-level conversion failure.
type scriptedADC struct {
	values []uint16
	calls  int
	failAt int
}

func (s *scriptedADC) Acquire() (uint16, error) {
	s.calls++
	if s.failAt > 0 && s.calls == s.failAt {
		return 0, errcode.ADCFailed
	}
	v := s.values[0]
	if len(s.values) > 1 {
		s.values = s.values[1:]
	}
	return v, nil
}

func TestSingleSampleCyclePublishes(t *testing.T) {
	// Five cycles of a constant 745 counts fill the 5-deep window, so the
	// smoothed value equals the raw count: ~600.2 mV => 10.0 °C / 50.0 °F.
	adc := &scriptedADC{values: []uint16{745}}
	var cell shmcell.Cell
	s := NewSampler(SingleSample(), adc, tmp36.Reading, &cell)

	for i := 0; i < 5; i++ {
		if err := s.Cycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
	got := cell.Snapshot()
	if got.DeciC != 100 || got.DeciF != 500 {
		t.Fatalf("snapshot = %+v, want {100 500}", got)
	}
	if cell.Publishes() != 5 {
		t.Fatalf("publishes = %d, want 5", cell.Publishes())
	}
	if adc.calls != 5 {
		t.Fatalf("acquire calls = %d, want 5 (one per period)", adc.calls)
	}
}

func TestTrimmedCyclePublishes(t *testing.T) {
	// Batch with two low and two high spikes around a 2048 plateau; the
	// trimmed mean is exactly 2048 (1650 mV => 115.0 °C / 239.0 °F).
	batch := []uint16{0, 4095, 2048, 2048, 2048, 2048, 0, 2048, 2048, 2048, 2048, 4095}
	adc := &scriptedADC{values: batch}
	var cell shmcell.Cell
	s := NewSampler(DeepFilter(), adc, tmp36.Reading, &cell)

	// Eight identical periods fill the 8-deep window.
	for i := 0; i < 8; i++ {
		adc.values = batch
		if err := s.Cycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
	if adc.calls != 8*BatchSize {
		t.Fatalf("acquire calls = %d, want %d (12 per period)", adc.calls, 8*BatchSize)
	}
	got := cell.Snapshot()
	if got.DeciC != 1150 || got.DeciF != 2390 {
		t.Fatalf("snapshot = %+v, want {1150 2390}", got)
	}
}

func TestFailedAcquireForfeitsPeriod(t *testing.T) {
	adc := &scriptedADC{values: []uint16{745}}
	var cell shmcell.Cell
	s := NewSampler(SingleSample(), adc, tmp36.Reading, &cell)

	if err := s.Cycle(); err != nil {
		t.Fatalf("first cycle: %v", err)
	}
	before := cell.Snapshot()

	// A failed conversion must not publish or disturb the window.
	adc.failAt = adc.calls + 1
	err := s.Cycle()
	if err == nil {
		t.Fatal("expected an error from the failed cycle")
	}
	if errcode.Of(err) != errcode.ADCFailed {
		t.Fatalf("error code = %v, want adc_failed", errcode.Of(err))
	}
	if cell.Publishes() != 1 {
		t.Fatalf("publishes = %d, want 1 (failed cycle forfeited)", cell.Publishes())
	}
	if got := cell.Snapshot(); got != before {
		t.Fatalf("snapshot changed across failed cycle: %+v -> %+v", before, got)
	}

	// The next good cycle proceeds from the prior window state.
	adc.failAt = 0
	if err := s.Cycle(); err != nil {
		t.Fatalf("recovery cycle: %v", err)
	}
	if cell.Publishes() != 2 {
		t.Fatalf("publishes = %d, want 2", cell.Publishes())
	}
}

func TestFailedBatchNeverReachesFilter(t *testing.T) {
	// Fail on the third conversion of a 12-sample batch: no publication.
	adc := &scriptedADC{values: []uint16{2048}, failAt: 3}
	var cell shmcell.Cell
	s := NewSampler(DeepFilter(), adc, tmp36.Reading, &cell)

	if err := s.Cycle(); err == nil {
		t.Fatal("expected failure")
	}
	if cell.Publishes() != 0 {
		t.Fatalf("publishes = %d, want 0", cell.Publishes())
	}
}
