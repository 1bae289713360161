package models

type Material struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	MinimumStock int64  `json:"minimumStock"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (m Material) SearchFields() []string {
	return []string{m.Name, m.Code, m.Category, m.Unit}
}
