package models

import "github.com/oeangg/simago-backend/internal/domain"

// MaterialInItem is a purchase line. Total is derived from quantity x unit
// price and never taken from the client.
type MaterialInItem struct {
	ID           int64  `json:"id"`
	MaterialID   int64  `json:"materialId"`
	MaterialName string `json:"materialName"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Total        int64  `json:"total"`
}

type MaterialIn struct {
	ID            int64            `json:"id"`
	TransactionNo string           `json:"transactionNo"`
	SupplierID    int64            `json:"supplierId"`
	SupplierName  string           `json:"supplierName"`
	Date          string           `json:"date"`
	Items         []MaterialInItem `json:"items"`
	Tax           int64            `json:"tax"`
	OtherCosts    int64            `json:"otherCosts"`
	GrandTotal    int64            `json:"grandTotal"`
	PaymentStatus string           `json:"paymentStatus"`
	CreatedAt     string           `json:"createdAt"`
}

func (m MaterialIn) SearchFields() []string {
	fields := []string{m.TransactionNo, m.SupplierName, m.PaymentStatus}
	for _, it := range m.Items {
		fields = append(fields, it.MaterialName)
	}
	return fields
}

// Recalculate rewrites every derived field from its inputs.
func (m *MaterialIn) Recalculate() {
	lineTotals := make([]int64, 0, len(m.Items))
	for i := range m.Items {
		m.Items[i].Total = domain.LineTotal(m.Items[i].Quantity, m.Items[i].UnitPrice)
		lineTotals = append(lineTotals, m.Items[i].Total)
	}
	m.GrandTotal = domain.GrandTotal(lineTotals, m.Tax, m.OtherCosts)
}
