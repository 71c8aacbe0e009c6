package types

// ------------------------
// Temperature
// ------------------------

// TemperatureReading is one converted measurement pair in tenths of a degree
// (e.g. DeciC 235 => 23.5 °C). Both values derive from the same smoothed
// sample and are published together.
type TemperatureReading struct {
	DeciC int16 `json:"deci_c"`
	DeciF int16 `json:"deci_f"`
}

// Celsius returns the reading in °C as a float. Prefer DeciC for storage.
func (r TemperatureReading) Celsius() float32 { return float32(r.DeciC) / 10 }

// Fahrenheit returns the reading in °F as a float. Prefer DeciF for storage.
func (r TemperatureReading) Fahrenheit() float32 { return float32(r.DeciF) / 10 }

// TemperatureInfo describes the sensing path of a deployment.
type TemperatureInfo struct {
	Sensor string `json:"sensor"` // "tmp36"
	Pin    string `json:"pin"`    // ADC channel, e.g. "adc0"
	Bits   int    `json:"bits"`   // converter resolution
}
