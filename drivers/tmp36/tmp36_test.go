package tmp36

import "testing"

// counts producing an exact millivolt level after float32 round-trip.
func countsForMV(mv float32) float32 {
	return mv * 4096.0 / 3300.0
}

func TestConvertKnownPoints(t *testing.T) {
	type C struct {
		mv    float32
		deciC int16
		deciF int16
	}
	for _, c := range []C{
		{500, 0, 320},   // sensor zero point: 0.0 °C / 32.0 °F
		{600, 100, 500}, // 10.0 °C / 50.0 °F
		{750, 250, 770}, // 25.0 °C / 77.0 °F
		{400, -100, 140},
	} {
		gc, gf := Convert(countsForMV(c.mv))
		if gc != c.deciC || gf != c.deciF {
			t.Fatalf("Convert(%v mV) = (%d, %d), want (%d, %d)", c.mv, gc, gf, c.deciC, c.deciF)
		}
	}
}

func TestConvertTruncatesTowardZero(t *testing.T) {
	// 605.5 mV => 10.55 °C => 105, not 106.
	if gc, _ := Convert(countsForMV(605.5)); gc != 105 {
		t.Fatalf("positive truncation: got %d, want 105", gc)
	}
	// 394.5 mV => -10.55 °C => -105, not -106.
	if gc, _ := Convert(countsForMV(394.5)); gc != -105 {
		t.Fatalf("negative truncation: got %d, want -105", gc)
	}
}

func TestMillivolts(t *testing.T) {
	if mv := Millivolts(4096); mv != 3300 {
		t.Fatalf("Millivolts(4096) = %v, want 3300", mv)
	}
	if mv := Millivolts(0); mv != 0 {
		t.Fatalf("Millivolts(0) = %v, want 0", mv)
	}
}

type fixedADC struct {
	v   uint16
	err error
}

func (f fixedADC) Acquire() (uint16, error) { return f.v, f.err }

func TestDeviceReadDeci(t *testing.T) {
	// 1024 counts => exactly 825 mV => 32.5 °C / 90.5 °F.
	d := New(fixedADC{v: 1024})
	r, err := d.ReadDeci()
	if err != nil {
		t.Fatalf("ReadDeci error: %v", err)
	}
	if r.DeciC != 325 || r.DeciF != 905 {
		t.Fatalf("ReadDeci = %+v, want {325 905}", r)
	}
}

func TestDeviceReadDeciError(t *testing.T) {
	d := New(fixedADC{err: errFake})
	if _, err := d.ReadDeci(); err != errFake {
		t.Fatalf("ReadDeci error = %v, want errFake", err)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

var errFake error = fakeErr("fake adc failure")
