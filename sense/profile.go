package sense

import (
	"time"

	"tempdisplay-go/x/timex"
)

// Profile selects the filtering depth of a deployment. Both presets sample
// at 1 Hz; they differ in how much noise rejection happens per period.
type Profile struct {
	// TrimmedBatch collects a full Batch per period and reduces it with
	// TrimmedMean. When false, one conversion per period is used verbatim.
	TrimmedBatch bool
	// WindowDepth is the moving-average depth (1..MaxWindowDepth).
	WindowDepth int
	// Period is the sampling period.
	Period time.Duration
	// SampleHold hints the ADC settling time to the platform layer. A
	// single-conversion profile can afford a longer hold.
	SampleHold time.Duration
}

// DeepFilter: 12 conversions per period trimmed to 8, 8-deep smoothing.
func DeepFilter() Profile {
	return Profile{
		TrimmedBatch: true,
		WindowDepth:  8,
		Period:       timex.PeriodFromHz(1),
		SampleHold:   4 * time.Microsecond,
	}
}

// SingleSample: one conversion per period with a longer hold, 5-deep smoothing.
func SingleSample() Profile {
	return Profile{
		TrimmedBatch: false,
		WindowDepth:  5,
		Period:       timex.PeriodFromHz(1),
		SampleHold:   16 * time.Microsecond,
	}
}
