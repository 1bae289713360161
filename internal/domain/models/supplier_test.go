package models

import "testing"

func TestPrimaryOrFirst(t *testing.T) {
	addrs := []SupplierAddress{
		{Line: "Jl. Satu"},
		{Line: "Jl. Dua", IsPrimary: true},
		{Line: "Jl. Tiga"},
	}

	addr, ok := PrimaryOrFirst(addrs, func(a SupplierAddress) bool { return a.IsPrimary })
	if !ok || addr.Line != "Jl. Dua" {
		t.Fatalf("primary flag not honored: %+v ok=%v", addr, ok)
	}

	// tanpa flag primary: jatuh ke elemen pertama
	for i := range addrs {
		addrs[i].IsPrimary = false
	}
	addr, ok = PrimaryOrFirst(addrs, func(a SupplierAddress) bool { return a.IsPrimary })
	if !ok || addr.Line != "Jl. Satu" {
		t.Fatalf("fallback to first failed: %+v ok=%v", addr, ok)
	}

	_, ok = PrimaryOrFirst(nil, func(a SupplierAddress) bool { return a.IsPrimary })
	if ok {
		t.Fatalf("empty relation must report ok=false")
	}
}

func TestSupplierToRow(t *testing.T) {
	s := Supplier{
		ID:   7,
		Code: "SUP-007",
		Name: "PT Maju Jaya",
		Addresses: []SupplierAddress{
			{Line: "Jl. Cadangan", City: "Bogor"},
			{Line: "Jl. Utama", City: "Jakarta", IsPrimary: true},
		},
		Contacts: []SupplierContact{
			{Name: "Budi", Phone: "0811", IsPrimary: true},
		},
	}

	row := s.ToRow()
	if row.AddressLine != "Jl. Utama" || row.City != "Jakarta" {
		t.Fatalf("row picks primary address, got %+v", row)
	}
	if row.ContactName != "Budi" || !row.HasContact {
		t.Fatalf("row picks primary contact, got %+v", row)
	}

	empty := Supplier{ID: 8, Code: "SUP-008", Name: "Tanpa Relasi"}.ToRow()
	if empty.HasAddress || empty.HasContact {
		t.Fatalf("empty relations must flag Has*=false: %+v", empty)
	}
	if empty.AddressLine != "" {
		t.Fatalf("empty relation must leave fields blank")
	}
}

func TestMaterialInRecalculate(t *testing.T) {
	m := MaterialIn{
		Items: []MaterialInItem{
			{Quantity: 3, UnitPrice: 15000, Total: 999},
			{Quantity: 2, UnitPrice: 15000},
		},
		Tax:        10000,
		OtherCosts: 6500,
		GrandTotal: 1, // nilai klien diabaikan
	}
	m.Recalculate()

	if m.Items[0].Total != 45000 || m.Items[1].Total != 30000 {
		t.Fatalf("line totals = %d, %d", m.Items[0].Total, m.Items[1].Total)
	}
	if m.GrandTotal != 91500 {
		t.Fatalf("grand total = %d, want 91500", m.GrandTotal)
	}
}

func TestSurveyRecalculate(t *testing.T) {
	s := Survey{
		CargoItems: []CargoItem{
			{Quantity: 2, WidthCm: 50, LengthCm: 40, HeightCm: 30, CBM: 999},
		},
		TotalCBM: 999,
	}
	s.Recalculate()

	if s.CargoItems[0].CBM != 0.12 {
		t.Fatalf("item CBM = %v, want 0.12", s.CargoItems[0].CBM)
	}
	if s.TotalCBM != 0.12 {
		t.Fatalf("total CBM = %v, want 0.12", s.TotalCBM)
	}
}
