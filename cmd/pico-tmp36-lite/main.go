// Command pico-tmp36-lite: TMP36 thermometer, single-sample profile: one
// conversion per second with a longer ADC hold, 5-deep smoothing, compact
// three-digit readout. Readings at or above 100.0° do not fit that layout;
// the profile accepts the limit.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/pico-tmp36-lite
//
// Wiring matches pico-tmp36.
package main

import (
	"context"
	"time"

	"tempdisplay-go/display"
	"tempdisplay-go/drivers/tmp36"
	"tempdisplay-go/platform"
	"tempdisplay-go/sense"
	"tempdisplay-go/x/fmtx"
	"tempdisplay-go/x/shmcell"
)

func main() {
	time.Sleep(100 * time.Millisecond)

	prof := sense.SingleSample()
	adc, scr, err := platform.Setup(platform.Config{SampleHold: prof.SampleHold})
	if err != nil {
		fmtx.Printf("platform: setup failed: %v\n", err)
		return
	}

	_, cell := shmcell.New()
	smp := sense.NewSampler(prof, adc, tmp36.Reading, cell)

	ctx := context.Background()
	go smp.Run(ctx)

	display.NewRefresher(cell, scr, display.FormatDeciFixed).Run(ctx)
}
