//go:build !rp2040

package strconvx

import "strconv"

// Signature parity with strconv; delegate straight through on host builds.

func Itoa(i int) string                  { return strconv.Itoa(i) }
func FormatInt(i int64, base int) string { return strconv.FormatInt(i, base) }
func FormatUint(u uint64, base int) string {
	return strconv.FormatUint(u, base)
}
func FormatFloat(f float64, fmt byte, prec, bitSize int) string {
	return strconv.FormatFloat(f, fmt, prec, bitSize)
}
