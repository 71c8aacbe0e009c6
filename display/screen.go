package display

// Screen is the drawing surface the refresher needs: clear the text region,
// draw one line of text at a fixed slot, flush to the panel. Platform code
// adapts a real panel (SSD1306 over I2C on rp2040 builds) or a terminal fake
// on host builds.
type Screen interface {
	// ClearRegion blanks the text area before redrawing.
	ClearRegion()
	// DrawLine places text at the given line slot (0 = top).
	DrawLine(line int, text string) error
	// Flush pushes the drawn frame to the panel.
	Flush() error
}

// Lines drawn per frame: Celsius on top, Fahrenheit below.
const (
	LineCelsius    = 0
	LineFahrenheit = 1
)
