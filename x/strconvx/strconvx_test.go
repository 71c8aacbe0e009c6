package strconvx

import "testing"

func TestItoa(t *testing.T) {
	type C struct {
		v    int
		want string
	}
	for _, c := range []C{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{-99999, "-99999"},
	} {
		if got := Itoa(c.v); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatIntUintBases(t *testing.T) {
	type C struct {
		u    uint64
		base int
		want string
	}
	for _, c := range []C{
		{0, 2, "0"},
		{5, 2, "101"},
		{255, 16, "ff"},
		{255, 10, "255"},
		{35, 36, "z"},
	} {
		if got := FormatUint(c.u, c.base); got != c.want {
			t.Fatalf("FormatUint(%d,%d) = %q, want %q", c.u, c.base, got, c.want)
		}
	}
	if got := FormatInt(-15, 10); got != "-15" {
		t.Fatalf("FormatInt(-15,10) = %q, want %q", got, "-15")
	}
	if got := FormatInt(-255, 16); got != "-ff" {
		t.Fatalf("FormatInt(-255,16) = %q, want %q", got, "-ff")
	}
}

func TestFormatFloatFixed(t *testing.T) {
	if got := FormatFloat(23.5, 'f', 1, 32); got != "23.5" {
		t.Fatalf("FormatFloat(23.5) = %q", got)
	}
	if got := FormatFloat(-0.25, 'f', 2, 32); got != "-0.25" {
		t.Fatalf("FormatFloat(-0.25) = %q", got)
	}
	if got := FormatFloat(7, 'f', 0, 64); got != "7" {
		t.Fatalf("FormatFloat(7, prec 0) = %q", got)
	}
}
