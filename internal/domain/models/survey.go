package models

import "github.com/oeangg/simago-backend/internal/domain"

// CargoItem dimensions are in cm; CBM is derived in cubic meters.
type CargoItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	WidthCm  float64 `json:"widthCm"`
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	CBM      float64 `json:"cbm"`
}

type Survey struct {
	ID           int64       `json:"id"`
	SurveyNo     string      `json:"surveyNo"`
	CustomerID   int64       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	SurveyDate   string      `json:"surveyDate"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	CargoItems   []CargoItem `json:"cargoItems"`
	TotalCBM     float64     `json:"totalCbm"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
}

func (s Survey) SearchFields() []string {
	fields := []string{s.SurveyNo, s.CustomerName, s.Origin, s.Destination}
	for _, it := range s.CargoItems {
		fields = append(fields, it.Name)
	}
	return fields
}

// Recalculate rewrites per-line CBM and the survey total.
func (s *Survey) Recalculate() {
	cbms := make([]float64, 0, len(s.CargoItems))
	for i := range s.CargoItems {
		it := &s.CargoItems[i]
		it.CBM = domain.CBM(it.WidthCm, it.LengthCm, it.HeightCm, it.Quantity)
		cbms = append(cbms, it.CBM)
	}
	s.TotalCBM = domain.TotalCBM(cbms)
}
