// Command pico-tmp36: TMP36 thermometer with an SSD1306 readout, deep-filter
// profile: 12 conversions per second trimmed to 8, 8-deep smoothing, wide
// readout with blanked leading digits.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/pico-tmp36
//
// Wiring: TMP36 out on ADC0 (GP26), SSD1306 128x32 on I2C0 (SDA=GP4,
// SCL=GP5), debug UART0 on GP0/GP1. On host builds this runs the same
// pipeline against platform fakes and prints to the terminal.
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
	// Let the panel power up before the first I2C transaction.
	time.Sleep(100 * time.Millisecond)

	prof := sense.DeepFilter()
	adc, scr, err := platform.Setup(platform.Config{SampleHold: prof.SampleHold})
	if err != nil {
		fmtx.Printf("platform: setup failed: %v\n", err)
		return
	}

	_, cell := shmcell.New()
	smp := sense.NewSampler(prof, adc, tmp36.Reading, cell)

	ctx := context.Background()
	go smp.Run(ctx)

	display.NewRefresher(cell, scr, display.FormatDeci).Run(ctx)
}
