//go:build rp2040

package fmtx

import (
	"io"

	"tempdisplay-go/x/strconvx"
)

// DefaultOutput is used by Print/Printf on MCU builds.
// Set this from platform bring-up (e.g. the debug UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match fmt) ---

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprint(DefaultOutput, Sprintf(format, a...))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return Fprint(w, Sprintf(format, a...))
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

func Sprint(a ...any) string {
	var b builder
	for i, v := range a {
		if i > 0 {
			b.byte(' ')
		}
		b.any(v)
	}
	return string(b.buf)
}

func Fprint(w io.Writer, a ...any) (int, error) {
	return w.Write([]byte(Sprint(a...)))
}

func Print(a ...any) (int, error) { return Fprint(DefaultOutput, a...) }

// --- Internals: tiny formatter subset ---
// Supports: %s %q %d %x %X %t %v %f %%. No flags, width, or precision;
// keep MCU cost low. Unknown verbs are echoed literally to aid debugging.

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

type builder struct{ buf []byte }

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.byte(format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.byte('%')
			i += 2
			continue
		}
		i++
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's':
			b.any(arg)
		case 'q':
			if s, ok := asString(arg); ok {
				b.str(quote(s))
			} else {
				b.any(arg)
			}
		case 'd':
			b.str(strconvx.FormatInt(toI64(arg), 10))
		case 'x', 'X':
			h := strconvx.FormatUint(uint64(toI64(arg)), 16)
			if verb == 'X' {
				h = upperHex(h)
			}
			b.str(h)
		case 't':
			if v, ok := arg.(bool); ok && v {
				b.str("true")
			} else {
				b.str("false")
			}
		case 'f', 'v':
			b.any(arg)
		default:
			b.byte('%')
			b.byte(verb)
		}
	}
}

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case []byte:
		b.buf = append(b.buf, x...)
	case error:
		b.str(x.Error())
	case int:
		b.str(strconvx.FormatInt(int64(x), 10))
	case int8:
		b.str(strconvx.FormatInt(int64(x), 10))
	case int16:
		b.str(strconvx.FormatInt(int64(x), 10))
	case int32:
		b.str(strconvx.FormatInt(int64(x), 10))
	case int64:
		b.str(strconvx.FormatInt(x, 10))
	case uint:
		b.str(strconvx.FormatUint(uint64(x), 10))
	case uint8:
		b.str(strconvx.FormatUint(uint64(x), 10))
	case uint16:
		b.str(strconvx.FormatUint(uint64(x), 10))
	case uint32:
		b.str(strconvx.FormatUint(uint64(x), 10))
	case uint64:
		b.str(strconvx.FormatUint(x, 10))
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	case float32:
		b.str(strconvx.FormatFloat(float64(x), 'f', 3, 32))
	case float64:
		b.str(strconvx.FormatFloat(x, 'f', 3, 64))
	default:
		b.str("<unk>")
	}
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	}
	return "", false
}

func toI64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case uint:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return int64(t)
	default:
		return 0
	}
}

func upperHex(h string) string {
	out := []byte(h)
	for i, c := range out {
		if 'a' <= c && c <= 'f' {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}

func quote(s string) string {
	// Minimal %q: escape backslash, quotes, and common control characters.
	out := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			out = append(out, '\\', s[i])
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, s[i])
		}
	}
	return string(append(out, '"'))
}
