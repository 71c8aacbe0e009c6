//go:build rp2040

package platform

import (
	"image/color"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"tempdisplay-go/display"
	"tempdisplay-go/sense"
	"tempdisplay-go/x/fmtx"
)

// Wiring (Pico defaults): TMP36 on ADC0 (GP26), SSD1306 128x32 on I2C0
// (SDA=GP4, SCL=GP5), debug UART0 on GP0/GP1.

func setup(cfg Config) (sense.Acquirer, display.Screen, error) {
	// Debug UART first so later bring-up can be traced.
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	fmtx.DefaultOutput = u

	// ADC channel for the sensor.
	machine.InitADC()
	ch := machine.ADC{Pin: machine.ADC0}
	if err := ch.Configure(machine.ADCConfig{
		Resolution: 12,
		// Settling hint in microseconds; ports without hold control ignore it.
		SampleTime: uint32(cfg.SampleHold / time.Microsecond),
	}); err != nil {
		return nil, nil, err
	}

	// Panel on I2C0.
	if err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	}); err != nil {
		return nil, nil, err
	}
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: ssd1306.Address_128_32,
		Width:   panelWidth,
		Height:  panelHeight,
	})
	dev.ClearDisplay()

	fmtx.Printf("platform: rp2040 up, hold=%dus\n", int(cfg.SampleHold/time.Microsecond))
	return &rp2ADC{ch: ch}, &oledScreen{dev: &dev}, nil
}

// rp2ADC adapts machine.ADC to the acquirer contract.
type rp2ADC struct {
	ch machine.ADC
}

// machine.ADC.Get is left-justified 16-bit; shift restores native 12-bit counts.
func (a *rp2ADC) Acquire() (uint16, error) {
	return a.ch.Get() >> 4, nil
}

const (
	panelWidth  = 128
	panelHeight = 32

	// Text region of the panel; the rightmost columns stay unused.
	textWidth = 96

	lineHeight  = 16
	baselineTop = 13
	glyphColumn = 0
)

var penOn = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var penOff = color.RGBA{A: 255}

// oledScreen draws the two reading lines on the SSD1306.
type oledScreen struct {
	dev *ssd1306.Device
}

func (s *oledScreen) ClearRegion() {
	for x := int16(0); x < textWidth; x++ {
		for y := int16(0); y < panelHeight; y++ {
			s.dev.SetPixel(x, y, penOff)
		}
	}
}

func (s *oledScreen) DrawLine(line int, text string) error {
	y := int16(baselineTop + line*lineHeight)
	tinyfont.WriteLine(s.dev, &freemono.Regular9pt7b, glyphColumn, y, text, penOn)
	return nil
}

func (s *oledScreen) Flush() error {
	return s.dev.Display()
}
