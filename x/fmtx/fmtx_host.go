//go:build !rp2040

package fmtx

import (
	"fmt"
	"io"
	"os"
)

// DefaultOutput is where Print/Printf go. Host builds default to stdout.
var DefaultOutput io.Writer = os.Stdout

func Sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }
func Errorf(format string, a ...any) error   { return fmt.Errorf(format, a...) }
func Sprint(a ...any) string                 { return fmt.Sprint(a...) }

func Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(DefaultOutput, format, a...)
}
func Print(a ...any) (int, error) { return fmt.Fprint(DefaultOutput, a...) }

func Fprintf(w io.Writer, format string, a ...any) (int, error) { return fmt.Fprintf(w, format, a...) }
func Fprint(w io.Writer, a ...any) (int, error)                 { return fmt.Fprint(w, a...) }
