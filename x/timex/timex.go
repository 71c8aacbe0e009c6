package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns the period of a requested frequency as a Duration.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	return time.Duration(1_000_000_000/uint64(freqHz)) * time.Nanosecond
}
