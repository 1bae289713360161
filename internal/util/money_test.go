package util

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{15000, "Rp15.000"},
		{91500, "Rp91.500"},
		{1250000, "Rp1.250.000"},
		{-7500, "-Rp7.500"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"Rp 1.000", 1000},
		{"Rp15.000", 15000},
		{"91,500", 91500},
		{"500", 500},
	}
	for _, c := range cases {
		got, err := ParseRupiahToInt(c.in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseRupiahToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	if _, err := ParseRupiahToInt("Rp"); err == nil {
		t.Fatalf("empty amount must fail")
	}
	if _, err := ParseRupiahToInt("abc"); err == nil {
		t.Fatalf("non-numeric amount must fail")
	}
}
