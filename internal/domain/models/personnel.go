package models

type Driver struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseType   string `json:"licenseType"` // SIM A / B1 / B2
	LicenseNumber string `json:"licenseNumber"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

func (d Driver) SearchFields() []string {
	return []string{d.Name, d.Code, d.Phone, d.LicenseNumber}
}

type Employee struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"` // NIP
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

func (e Employee) SearchFields() []string {
	return []string{e.Name, e.Code, e.Phone, e.Position, e.Department}
}
