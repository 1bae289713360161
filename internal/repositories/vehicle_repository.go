package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) List(p domain.ListParams, vehicleType, status string) ([]models.Vehicle, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(plate_number LIKE ? OR type LIKE ? OR brand LIKE ?)")
		args = append(args, like, like, like)
	}
	if vehicleType = strings.TrimSpace(vehicleType); vehicleType != "" {
		where = append(where, "type = ?")
		args = append(args, vehicleType)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM vehicles WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			id,
			COALESCE(plate_number, ''),
			COALESCE(type, ''),
			COALESCE(brand, ''),
			COALESCE(capacity_kg, 0),
			COALESCE(year, 0),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM vehicles
		WHERE `+cond+`
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.PlateNumber, &v.Type, &v.Brand, &v.CapacityKg, &v.Year, &v.Status, &v.CreatedAt); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(plate_number, ''),
			COALESCE(type, ''),
			COALESCE(brand, ''),
			COALESCE(capacity_kg, 0),
			COALESCE(year, 0),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM vehicles
		WHERE id = ?
	`, id).Scan(&v.ID, &v.PlateNumber, &v.Type, &v.Brand, &v.CapacityKg, &v.Year, &v.Status, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return v, domain.NotFoundError{Resource: "kendaraan"}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (models.Vehicle, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM vehicles WHERE plate_number = ?`, v.PlateNumber).Scan(&exists); err != nil {
		return v, err
	}
	if exists > 0 {
		return v, domain.ConflictError{Resource: "kendaraan", Msg: fmt.Sprintf("plat nomor %s sudah terdaftar", v.PlateNumber)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO vehicles (plate_number, type, brand, capacity_kg, year, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, v.PlateNumber, v.Type, v.Brand, v.CapacityKg, v.Year, v.Status)
	if err != nil {
		return v, err
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r VehicleRepository) Update(id int64, v models.Vehicle) (models.Vehicle, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return v, err
	}
	if strings.TrimSpace(v.PlateNumber) != "" && v.PlateNumber != existing.PlateNumber {
		return v, domain.ValidationError{Field: "plateNumber", Msg: "plat nomor tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE vehicles SET type = ?, brand = ?, capacity_kg = ?, year = ?, status = ? WHERE id = ?
	`, v.Type, v.Brand, v.CapacityKg, v.Year, v.Status, id); err != nil {
		return v, err
	}

	return r.GetByID(id)
}

func (r VehicleRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kendaraan"}
	}
	return nil
}
