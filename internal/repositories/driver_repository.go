package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) List(p domain.ListParams, status string) ([]models.Driver, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR code LIKE ? OR phone LIKE ? OR license_number LIKE ?)")
		args = append(args, like, like, like, like)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(phone, ''),
			COALESCE(license_type, ''),
			COALESCE(license_number, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM drivers
		WHERE `+cond+`
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.Phone, &d.LicenseType, &d.LicenseNumber, &d.Status, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return drivers, total, nil
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	var d models.Driver
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(phone, ''),
			COALESCE(license_type, ''),
			COALESCE(license_number, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM drivers
		WHERE id = ?
	`, id).Scan(&d.ID, &d.Code, &d.Name, &d.Phone, &d.LicenseType, &d.LicenseNumber, &d.Status, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func (r DriverRepository) Create(d models.Driver) (models.Driver, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE code = ?`, d.Code).Scan(&exists); err != nil {
		return d, err
	}
	if exists > 0 {
		return d, domain.ConflictError{Resource: "driver", Msg: fmt.Sprintf("kode %s sudah terpakai", d.Code)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO drivers (code, name, phone, license_type, license_number, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, d.Code, d.Name, d.Phone, d.LicenseType, d.LicenseNumber, d.Status)
	if err != nil {
		return d, err
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r DriverRepository) Update(id int64, d models.Driver) (models.Driver, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return d, err
	}
	if strings.TrimSpace(d.Code) != "" && d.Code != existing.Code {
		return d, domain.ValidationError{Field: "code", Msg: "kode driver tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE drivers SET name = ?, phone = ?, license_type = ?, license_number = ?, status = ? WHERE id = ?
	`, d.Name, d.Phone, d.LicenseType, d.LicenseNumber, d.Status, id); err != nil {
		return d, err
	}

	return r.GetByID(id)
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
