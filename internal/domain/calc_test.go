package domain

import (
	"math"
	"testing"
)

func TestLineTotal(t *testing.T) {
	if got := LineTotal(3, 15000); got != 45000 {
		t.Fatalf("LineTotal(3, 15000) = %d, want 45000", got)
	}
	if got := LineTotal(0, 15000); got != 0 {
		t.Fatalf("LineTotal with zero qty = %d, want 0", got)
	}
	if got := LineTotal(-2, 15000); got != 0 {
		t.Fatalf("LineTotal with negative qty = %d, want 0", got)
	}
}

func TestCBM(t *testing.T) {
	// 50cm x 40cm x 30cm x 2 pcs = 0.12 m3
	got := CBM(50, 40, 30, 2)
	if math.Abs(got-0.12) > 1e-9 {
		t.Fatalf("CBM(50,40,30,2) = %v, want 0.12", got)
	}
	if got := CBM(-50, 40, 30, 2); got != 0 {
		t.Fatalf("CBM with negative dimension = %v, want 0", got)
	}
	if got := CBM(50, 40, 30, 0); got != 0 {
		t.Fatalf("CBM with zero qty = %v, want 0", got)
	}
}

func TestGrandTotal(t *testing.T) {
	lines := []int64{45000, 30000}
	if got := GrandTotal(lines, 10000, 6500); got != 91500 {
		t.Fatalf("GrandTotal = %d, want 91500", got)
	}
	if got := GrandTotal(nil, 0, 0); got != 0 {
		t.Fatalf("GrandTotal empty = %d, want 0", got)
	}
	// biaya negatif tidak mengurangi total
	if got := GrandTotal(lines, -10000, 0); got != 75000 {
		t.Fatalf("GrandTotal with negative tax = %d, want 75000", got)
	}
}

func TestTotalCBM(t *testing.T) {
	got := TotalCBM([]float64{0.12, 0.5})
	if math.Abs(got-0.62) > 1e-9 {
		t.Fatalf("TotalCBM = %v, want 0.62", got)
	}
}

func TestFormatCBM(t *testing.T) {
	if got := FormatCBM(0.12); got != "0.1200" {
		t.Fatalf("FormatCBM(0.12) = %q, want 0.1200", got)
	}
	if got := FormatCBM(0); got != "0.0000" {
		t.Fatalf("FormatCBM(0) = %q, want 0.0000", got)
	}
}
