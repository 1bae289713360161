package models

// SupplierAddress is a one-to-many sub-record; at most one row per supplier
// carries IsPrimary.
type SupplierAddress struct {
	ID           int64  `json:"id"`
	Line         string `json:"line"`
	City         string `json:"city"`
	ProvinceCode string `json:"provinceCode"`
	PostalCode   string `json:"postalCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type SupplierContact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"isPrimary"`
}

type Supplier struct {
	ID        int64             `json:"id"`
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	TaxNumber string            `json:"taxNumber"`
	Status    string            `json:"status"`
	Addresses []SupplierAddress `json:"addresses"`
	Contacts  []SupplierContact `json:"contacts"`
	CreatedAt string            `json:"createdAt"`
}

// SearchFields lists everything the global filter looks at for suppliers.
func (s Supplier) SearchFields() []string {
	fields := []string{s.Name, s.Code, s.TaxNumber}
	for _, c := range s.Contacts {
		fields = append(fields, c.Name, c.Phone, c.Email)
	}
	for _, a := range s.Addresses {
		fields = append(fields, a.Line)
	}
	return fields
}

// SupplierRow is the flattened table projection: one representative address
// and contact picked by the primary flag.
type SupplierRow struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	TaxNumber    string `json:"taxNumber"`
	Status       string `json:"status"`
	AddressLine  string `json:"addressLine"`
	City         string `json:"city"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	HasAddress   bool   `json:"hasAddress"`
	HasContact   bool   `json:"hasContact"`
	CreatedAt    string `json:"createdAt"`
}

func (s Supplier) ToRow() SupplierRow {
	row := SupplierRow{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		TaxNumber: s.TaxNumber,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
	if addr, ok := PrimaryOrFirst(s.Addresses, func(a SupplierAddress) bool { return a.IsPrimary }); ok {
		row.AddressLine = addr.Line
		row.City = addr.City
		row.HasAddress = true
	}
	if ct, ok := PrimaryOrFirst(s.Contacts, func(c SupplierContact) bool { return c.IsPrimary }); ok {
		row.ContactName = ct.Name
		row.ContactPhone = ct.Phone
		row.ContactEmail = ct.Email
		row.HasContact = true
	}
	return row
}
