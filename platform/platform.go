// Package platform owns hardware bring-up: the ADC channel the TMP36 sits
// on, the I2C bus and SSD1306 panel, and the debug UART. Host builds
// substitute fakes so the pipeline runs (and tests build) without a board.
package platform

import (
	"time"

	"tempdisplay-go/display"
	"tempdisplay-go/sense"
)

// Config carries the per-profile hardware hints.
type Config struct {
	// SampleHold is the ADC settling hint from the sampling profile.
	SampleHold time.Duration
}

// Setup configures the board and returns the acquisition handle and the
// display surface. The acquirer is owned by the sampling context from here
// on; nothing else may touch it.
func Setup(cfg Config) (sense.Acquirer, display.Screen, error) {
	return setup(cfg)
}
