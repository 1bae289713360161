package models

type CustomerAddress struct {
	ID           int64  `json:"id"`
	Line         string `json:"line"`
	City         string `json:"city"`
	ProvinceCode string `json:"provinceCode"`
	PostalCode   string `json:"postalCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type CustomerContact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"isPrimary"`
}

type Customer struct {
	ID        int64             `json:"id"`
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Type      string            `json:"type"` // individu / perusahaan
	Status    string            `json:"status"`
	Addresses []CustomerAddress `json:"addresses"`
	Contacts  []CustomerContact `json:"contacts"`
	CreatedAt string            `json:"createdAt"`
}

func (c Customer) SearchFields() []string {
	fields := []string{c.Name, c.Code}
	for _, ct := range c.Contacts {
		fields = append(fields, ct.Name, ct.Phone, ct.Email)
	}
	for _, a := range c.Addresses {
		fields = append(fields, a.Line)
	}
	return fields
}

type CustomerRow struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	AddressLine  string `json:"addressLine"`
	City         string `json:"city"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	HasAddress   bool   `json:"hasAddress"`
	HasContact   bool   `json:"hasContact"`
	CreatedAt    string `json:"createdAt"`
}

func (c Customer) ToRow() CustomerRow {
	row := CustomerRow{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Type:      c.Type,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
	if addr, ok := PrimaryOrFirst(c.Addresses, func(a CustomerAddress) bool { return a.IsPrimary }); ok {
		row.AddressLine = addr.Line
		row.City = addr.City
		row.HasAddress = true
	}
	if ct, ok := PrimaryOrFirst(c.Contacts, func(x CustomerContact) bool { return x.IsPrimary }); ok {
		row.ContactName = ct.Name
		row.ContactPhone = ct.Phone
		row.HasContact = true
	}
	return row
}
