package models

// Vehicle uses the plate number as its business code.
type Vehicle struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Type        string `json:"type"`
	Brand       string `json:"brand"`
	CapacityKg  int64  `json:"capacityKg"`
	Year        int    `json:"year"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func (v Vehicle) SearchFields() []string {
	return []string{v.PlateNumber, v.Type, v.Brand}
}
