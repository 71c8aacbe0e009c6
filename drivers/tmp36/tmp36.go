// Package tmp36 converts 12-bit ADC counts from a TMP36 analog temperature
// sensor into tenths of a degree. The TMP36 is linear: 500 mV offset,
// 10 mV per °C, read here against a 3.3 V reference.
//
// Conversion is pure arithmetic with no clamping. Counts outside the sensor's
// rated range yield out-of-range tenths; the display shows them as-is.
package tmp36

import "tempdisplay-go/types"

// Converter geometry.
const (
	ADCBits        = 12
	MaxCount       = 1<<ADCBits - 1
	VRefMilliVolts = 3300
)

// Millivolts per count for a 12-bit conversion at 3.3 V.
const countMilliVolts = 3300.0 / 4096.0

const (
	offsetMilliVolts = 500.0
	milliVoltsPerC   = 10.0
)

// Millivolts returns the input voltage for a (possibly fractional) count.
func Millivolts(counts float32) float32 { return counts * countMilliVolts }

// Convert maps a smoothed count to deci-Celsius and deci-Fahrenheit.
// Both results truncate toward zero at tenths resolution.
func Convert(counts float32) (deciC, deciF int16) {
	mv := counts * countMilliVolts
	c := (mv - offsetMilliVolts) / milliVoltsPerC
	f := c*9.0/5.0 + 32.0
	return int16(c * 10), int16(f * 10)
}

// Reading wraps Convert into the shared reading type.
func Reading(counts float32) types.TemperatureReading {
	c, f := Convert(counts)
	return types.TemperatureReading{DeciC: c, DeciF: f}
}

// ADC is the single-conversion source a Device reads from.
// It matches the acquirer contract of the sampling pipeline.
type ADC interface {
	Acquire() (uint16, error)
}

// Device binds the transfer function to an ADC channel for one-shot reads
// outside the filtered pipeline (bring-up checks, trace output).
type Device struct {
	adc ADC
}

// New creates a Device. The ADC channel must already be configured.
func New(adc ADC) Device { return Device{adc: adc} }

// ReadDeci performs one unfiltered conversion and returns the reading.
func (d Device) ReadDeci() (types.TemperatureReading, error) {
	raw, err := d.adc.Acquire()
	if err != nil {
		return types.TemperatureReading{}, err
	}
	return Reading(float32(raw)), nil
}

// Info describes this sensing path.
func (d Device) Info() types.TemperatureInfo {
	return types.TemperatureInfo{Sensor: "tmp36", Pin: "adc0", Bits: ADCBits}
}
