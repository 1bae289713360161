package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

// RegionRepository serves the three-level region reference data. Children
// reference their parent by code, so parent deletes are cascade-checked.
type RegionRepository struct {
	DB *sql.DB
}

func (r RegionRepository) ListProvinces(p domain.ListParams) ([]models.Province, int, error) {
	p = p.Normalize()

	where := "1=1"
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = "(name LIKE ? OR code LIKE ?)"
		args = append(args, like, like)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM provinces WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, COALESCE(code, ''), COALESCE(name, '')
		FROM provinces
		WHERE `+where+`
		ORDER BY code
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	provinces := []models.Province{}
	for rows.Next() {
		var pv models.Province
		if err := rows.Scan(&pv.ID, &pv.Code, &pv.Name); err != nil {
			return nil, 0, err
		}
		provinces = append(provinces, pv)
	}
	return provinces, total, rows.Err()
}

func (r RegionRepository) GetProvinceByID(id int64) (models.Province, error) {
	var pv models.Province
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(code, ''), COALESCE(name, '') FROM provinces WHERE id = ?
	`, id).Scan(&pv.ID, &pv.Code, &pv.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return pv, domain.NotFoundError{Resource: "provinsi"}
	}
	return pv, err
}

func (r RegionRepository) CreateProvince(pv models.Province) (models.Province, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM provinces WHERE code = ?`, pv.Code).Scan(&exists); err != nil {
		return pv, err
	}
	if exists > 0 {
		return pv, domain.ConflictError{Resource: "provinsi", Msg: fmt.Sprintf("kode %s sudah terpakai", pv.Code)}
	}

	res, err := r.DB.Exec(`INSERT INTO provinces (code, name) VALUES (?, ?)`, pv.Code, pv.Name)
	if err != nil {
		return pv, err
	}
	id, _ := res.LastInsertId()
	return r.GetProvinceByID(id)
}

func (r RegionRepository) UpdateProvince(id int64, pv models.Province) (models.Province, error) {
	existing, err := r.GetProvinceByID(id)
	if err != nil {
		return pv, err
	}
	if strings.TrimSpace(pv.Code) != "" && pv.Code != existing.Code {
		return pv, domain.ValidationError{Field: "code", Msg: "kode provinsi tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`UPDATE provinces SET name = ? WHERE id = ?`, pv.Name, id); err != nil {
		return pv, err
	}
	return r.GetProvinceByID(id)
}

func (r RegionRepository) DeleteProvince(id int64) error {
	pv, err := r.GetProvinceByID(id)
	if err != nil {
		return err
	}

	var refs int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM regencies WHERE province_code = ?`, pv.Code).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "provinsi", Msg: "masih memiliki kabupaten/kota"}
	}

	res, err := r.DB.Exec(`DELETE FROM provinces WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "provinsi"}
	}
	return nil
}

func (r RegionRepository) ListRegencies(p domain.ListParams, provinceCode string) ([]models.Regency, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR code LIKE ? OR province_code LIKE ?)")
		args = append(args, like, like, like)
	}
	if provinceCode = strings.TrimSpace(provinceCode); provinceCode != "" {
		where = append(where, "province_code = ?")
		args = append(args, provinceCode)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM regencies WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, COALESCE(code, ''), COALESCE(province_code, ''), COALESCE(name, '')
		FROM regencies
		WHERE `+cond+`
		ORDER BY code
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regencies := []models.Regency{}
	for rows.Next() {
		var rg models.Regency
		if err := rows.Scan(&rg.ID, &rg.Code, &rg.ProvinceCode, &rg.Name); err != nil {
			return nil, 0, err
		}
		regencies = append(regencies, rg)
	}
	return regencies, total, rows.Err()
}

func (r RegionRepository) GetRegencyByID(id int64) (models.Regency, error) {
	var rg models.Regency
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(code, ''), COALESCE(province_code, ''), COALESCE(name, '')
		FROM regencies WHERE id = ?
	`, id).Scan(&rg.ID, &rg.Code, &rg.ProvinceCode, &rg.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return rg, domain.NotFoundError{Resource: "kabupaten/kota"}
	}
	return rg, err
}

func (r RegionRepository) CreateRegency(rg models.Regency) (models.Regency, error) {
	var parent int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM provinces WHERE code = ?`, rg.ProvinceCode).Scan(&parent); err != nil {
		return rg, err
	}
	if parent == 0 {
		return rg, domain.ValidationError{Field: "provinceCode", Msg: "provinsi tidak ditemukan"}
	}

	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM regencies WHERE code = ?`, rg.Code).Scan(&exists); err != nil {
		return rg, err
	}
	if exists > 0 {
		return rg, domain.ConflictError{Resource: "kabupaten/kota", Msg: fmt.Sprintf("kode %s sudah terpakai", rg.Code)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO regencies (code, province_code, name) VALUES (?, ?, ?)
	`, rg.Code, rg.ProvinceCode, rg.Name)
	if err != nil {
		return rg, err
	}
	id, _ := res.LastInsertId()
	return r.GetRegencyByID(id)
}

func (r RegionRepository) UpdateRegency(id int64, rg models.Regency) (models.Regency, error) {
	existing, err := r.GetRegencyByID(id)
	if err != nil {
		return rg, err
	}
	if strings.TrimSpace(rg.Code) != "" && rg.Code != existing.Code {
		return rg, domain.ValidationError{Field: "code", Msg: "kode kabupaten/kota tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE regencies SET province_code = ?, name = ? WHERE id = ?
	`, rg.ProvinceCode, rg.Name, id); err != nil {
		return rg, err
	}
	return r.GetRegencyByID(id)
}

func (r RegionRepository) DeleteRegency(id int64) error {
	rg, err := r.GetRegencyByID(id)
	if err != nil {
		return err
	}

	var refs int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM districts WHERE regency_code = ?`, rg.Code).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "kabupaten/kota", Msg: "masih memiliki kecamatan"}
	}

	res, err := r.DB.Exec(`DELETE FROM regencies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kabupaten/kota"}
	}
	return nil
}

func (r RegionRepository) ListDistricts(p domain.ListParams, regencyCode string) ([]models.District, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR code LIKE ? OR regency_code LIKE ?)")
		args = append(args, like, like, like)
	}
	if regencyCode = strings.TrimSpace(regencyCode); regencyCode != "" {
		where = append(where, "regency_code = ?")
		args = append(args, regencyCode)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM districts WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, COALESCE(code, ''), COALESCE(regency_code, ''), COALESCE(name, '')
		FROM districts
		WHERE `+cond+`
		ORDER BY code
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	districts := []models.District{}
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Code, &d.RegencyCode, &d.Name); err != nil {
			return nil, 0, err
		}
		districts = append(districts, d)
	}
	return districts, total, rows.Err()
}

func (r RegionRepository) GetDistrictByID(id int64) (models.District, error) {
	var d models.District
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(code, ''), COALESCE(regency_code, ''), COALESCE(name, '')
		FROM districts WHERE id = ?
	`, id).Scan(&d.ID, &d.Code, &d.RegencyCode, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.NotFoundError{Resource: "kecamatan"}
	}
	return d, err
}

func (r RegionRepository) CreateDistrict(d models.District) (models.District, error) {
	var parent int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM regencies WHERE code = ?`, d.RegencyCode).Scan(&parent); err != nil {
		return d, err
	}
	if parent == 0 {
		return d, domain.ValidationError{Field: "regencyCode", Msg: "kabupaten/kota tidak ditemukan"}
	}

	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM districts WHERE code = ?`, d.Code).Scan(&exists); err != nil {
		return d, err
	}
	if exists > 0 {
		return d, domain.ConflictError{Resource: "kecamatan", Msg: fmt.Sprintf("kode %s sudah terpakai", d.Code)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO districts (code, regency_code, name) VALUES (?, ?, ?)
	`, d.Code, d.RegencyCode, d.Name)
	if err != nil {
		return d, err
	}
	id, _ := res.LastInsertId()
	return r.GetDistrictByID(id)
}

func (r RegionRepository) UpdateDistrict(id int64, d models.District) (models.District, error) {
	existing, err := r.GetDistrictByID(id)
	if err != nil {
		return d, err
	}
	if strings.TrimSpace(d.Code) != "" && d.Code != existing.Code {
		return d, domain.ValidationError{Field: "code", Msg: "kode kecamatan tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE districts SET regency_code = ?, name = ? WHERE id = ?
	`, d.RegencyCode, d.Name, id); err != nil {
		return d, err
	}
	return r.GetDistrictByID(id)
}

func (r RegionRepository) DeleteDistrict(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM districts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kecamatan"}
	}
	return nil
}
