// Package sense implements the sampling pipeline: raw acquisition, outlier
// trimming, moving-average smoothing, unit conversion, and publication of the
// result to the display-refresh context.
package sense

// Acquirer produces one raw 12-bit conversion per call, blocking until the
// conversion completes. Implementations live in the platform layer. After
// hand-off to a Sampler the channel must not be touched by anything else.
type Acquirer interface {
	Acquire() (uint16, error)
}
