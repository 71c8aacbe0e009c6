// Package display renders the published readings: fixed-width text formatting
// of deci-degree values and a periodic refresh loop over a Screen.
package display

import "tempdisplay-go/x/mathx"

// FormatFunc renders a deci-degree value into dst, append-style.
type FormatFunc func(dst []byte, v int16, unit byte) []byte

// FormatDeci renders the wide layout: sign, up to three integer digits with
// unused leading positions blanked, the tenths digit, and the unit.
// The sign is always drawn, '+' for non-negative.
//
//	FormatDeci(dst, 1005, 'F') -> "+100.5 F"
//	FormatDeci(dst, -234, 'C') -> "- 23.4 C"
//	FormatDeci(dst, 5, 'C')    -> "+  0.5 C"
func FormatDeci(dst []byte, v int16, unit byte) []byte {
	sign, n := signAndDigits(v)
	tenths := byte(n % 10)
	ones := byte(n / 10 % 10)
	tens := byte(n / 100 % 10)
	hundreds := byte(n / 1000 % 10)

	dst = append(dst, sign)
	switch {
	case hundreds == 0 && tens == 0:
		dst = append(dst, ' ', ' ')
	case hundreds == 0:
		dst = append(dst, ' ', '0'+tens)
	default:
		dst = append(dst, '0'+hundreds, '0'+tens)
	}
	return append(dst, '0'+ones, '.', '0'+tenths, ' ', unit)
}

// FormatDeciFixed renders the compact layout: sign and exactly three digits,
// no blanking. Values at or above 100.0° do not fit and render wrongly; the
// compact profile accepts that limit rather than guarding it.
//
//	FormatDeciFixed(dst, 5, 'F')  -> "+00.5 F"
//	FormatDeciFixed(dst, -234, 'C') -> "-23.4 C"
func FormatDeciFixed(dst []byte, v int16, unit byte) []byte {
	sign, n := signAndDigits(v)
	tenths := byte(n % 10)
	ones := byte(n / 10 % 10)
	tens := byte(n / 100 % 10)
	return append(dst, sign, '0'+tens, '0'+ones, '.', '0'+tenths, ' ', unit)
}

// signAndDigits widens before Abs so the minimum int16 stays representable.
func signAndDigits(v int16) (byte, int32) {
	if v < 0 {
		return '-', mathx.Abs(int32(v))
	}
	return '+', int32(v)
}
