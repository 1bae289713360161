package domain

import "fmt"

// Derived values are always recomputed server-side; whatever the client sends
// for total/cbm/grandTotal is ignored.

// LineTotal menghitung total satu baris pembelian material.
func LineTotal(quantity, unitPrice int64) int64 {
	if quantity < 0 || unitPrice < 0 {
		return 0
	}
	return quantity * unitPrice
}

// CBM menghitung volume kargo: dimensi dalam cm, hasil dalam meter kubik.
func CBM(widthCm, lengthCm, heightCm float64, quantity int64) float64 {
	if widthCm < 0 || lengthCm < 0 || heightCm < 0 || quantity < 0 {
		return 0
	}
	return (widthCm * lengthCm * heightCm / 1_000_000) * float64(quantity)
}

// GrandTotal = jumlah line total + pajak + biaya lain. Biaya negatif dianggap 0.
func GrandTotal(lineTotals []int64, tax, otherCosts int64) int64 {
	var sum int64
	for _, t := range lineTotals {
		sum += t
	}
	if tax < 0 {
		tax = 0
	}
	if otherCosts < 0 {
		otherCosts = 0
	}
	return sum + tax + otherCosts
}

// TotalCBM sums per-line CBM values.
func TotalCBM(cbms []float64) float64 {
	var sum float64
	for _, v := range cbms {
		sum += v
	}
	return sum
}

// FormatCBM renders a CBM value with 4 decimal places.
func FormatCBM(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
