package domain

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)
	if got := FormatNumber("MI", date, 1); got != "MI-20260829-0001" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatNumber(" srv ", date, 123); got != "SRV-20260829-0123" {
		t.Fatalf("FormatNumber trims and uppercases: %q", got)
	}
}

func TestNumberPrefix(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)
	if got := NumberPrefix("MI", date); got != "MI-20260829-%" {
		t.Fatalf("NumberPrefix = %q", got)
	}
}

func TestParseSequence(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"MI-20260829-0001", 1},
		{"MI-20260829-0042", 42},
		{"MI-20260829-9999", 9999},
		{"", 0},
		{"tanpa-angka-", 0},
		{"rusak", 0},
	}
	for _, c := range cases {
		if got := ParseSequence(c.in); got != c.want {
			t.Fatalf("ParseSequence(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
