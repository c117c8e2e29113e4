package util

import (
	"testing"
	"time"
)

func TestNormalizeRomp(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "prefixed", input: "ROMP3", want: "03", ok: true},
		{name: "prefixed two digit", input: "ROMP03", want: "03", ok: true},
		{name: "bare two digit", input: "12", want: "12", ok: true},
		{name: "bare one digit", input: "1", want: "01", ok: true},
		{name: "surrounding space", input: " ROMP07 ", want: "07", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace only", input: "   ", ok: false},
		{name: "no digits", input: "abc", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeRomp(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeSAP(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "plain", input: "40", want: 40, ok: true},
		{name: "excel float artifact", input: "40.0", want: 40, ok: true},
		{name: "leading zeros", input: "000010", want: 10, ok: true},
		{name: "surrounding space", input: " 170 ", want: 170, ok: true},
		{name: "fractional truncates", input: "40.7", want: 40, ok: true},
		{name: "not a number", input: "N/A", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeSAP(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestParseShipDate(t *testing.T) {
	jan10 := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{name: "iso", input: "2024-01-10", want: jan10, ok: true},
		{name: "us slash", input: "01/10/2024", want: jan10, ok: true},
		{name: "us slash short", input: "1/10/2024", want: jan10, ok: true},
		{name: "datetime", input: "2024-01-10 00:00:00", want: jan10, ok: true},
		{name: "textual month", input: "Jan 10, 2024", want: jan10, ok: true},
		{name: "excel serial", input: "45301", want: jan10, ok: true},
		{name: "garbage", input: "soon", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseShipDate(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("   ") || !IsBlank("\t\n") {
		t.Fatal("whitespace should be blank")
	}
	if IsBlank("0") || IsBlank(" x ") {
		t.Fatal("non-empty values should not be blank")
	}
}
