package util

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		0:     "00:00",
		59:    "00:59",
		60:    "01:00",
		3599:  "59:59",
		3600:  "01:00:00",
		3661:  "01:01:01",
		86399: "23:59:59",
		-5:    "00:00",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int64{
		"45":       45,
		"01:30":    90,
		" 5:00 ":   300,
		"01:00:00": 3600,
		"1:01:01":  3661,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("ParseDuration(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDuration(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseDurationRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "01:75", "-3", "1:-1"} {
		if _, err := ParseDuration(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, secs := range []int64{0, 59, 60, 3599, 3600, 3661, 86399} {
		got, err := ParseDuration(FormatDuration(secs))
		if err != nil {
			t.Fatalf("ParseDuration(FormatDuration(%d)) failed: %v", secs, err)
		}
		if got != secs {
			t.Fatalf("round trip %d -> %d", secs, got)
		}
	}
}
