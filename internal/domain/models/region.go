package models

// Region reference data: provinces > regencies > districts. The code is the
// business key and children reference their parent by code, so deleting a
// parent that still has children is a conflict.

type Province struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (p Province) SearchFields() []string {
	return []string{p.Name, p.Code}
}

type Regency struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	ProvinceCode string `json:"provinceCode"`
	Name         string `json:"name"`
}

func (r Regency) SearchFields() []string {
	return []string{r.Name, r.Code, r.ProvinceCode}
}

type District struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	RegencyCode string `json:"regencyCode"`
	Name        string `json:"name"`
}

func (d District) SearchFields() []string {
	return []string{d.Name, d.Code, d.RegencyCode}
}
