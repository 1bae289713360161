package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type MaterialRepository struct {
	DB *sql.DB
}

func (r MaterialRepository) List(p domain.ListParams, category, status string) ([]models.Material, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR code LIKE ? OR category LIKE ? OR unit LIKE ?)")
		args = append(args, like, like, like, like)
	}
	if category = strings.TrimSpace(category); category != "" {
		where = append(where, "category = ?")
		args = append(args, category)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM materials WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(category, ''),
			COALESCE(unit, ''),
			COALESCE(minimum_stock, 0),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM materials
		WHERE `+cond+`
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	materials := []models.Material{}
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Unit, &m.MinimumStock, &m.Status, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return materials, total, nil
}

func (r MaterialRepository) GetByID(id int64) (models.Material, error) {
	var m models.Material
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(category, ''),
			COALESCE(unit, ''),
			COALESCE(minimum_stock, 0),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM materials
		WHERE id = ?
	`, id).Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Unit, &m.MinimumStock, &m.Status, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return m, domain.NotFoundError{Resource: "material"}
	}
	return m, err
}

func (r MaterialRepository) Create(m models.Material) (models.Material, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM materials WHERE code = ?`, m.Code).Scan(&exists); err != nil {
		return m, err
	}
	if exists > 0 {
		return m, domain.ConflictError{Resource: "material", Msg: fmt.Sprintf("kode %s sudah terpakai", m.Code)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO materials (code, name, category, unit, minimum_stock, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, m.Code, m.Name, m.Category, m.Unit, m.MinimumStock, m.Status)
	if err != nil {
		return m, err
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r MaterialRepository) Update(id int64, m models.Material) (models.Material, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return m, err
	}
	if strings.TrimSpace(m.Code) != "" && m.Code != existing.Code {
		return m, domain.ValidationError{Field: "code", Msg: "kode material tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE materials SET name = ?, category = ?, unit = ?, minimum_stock = ?, status = ? WHERE id = ?
	`, m.Name, m.Category, m.Unit, m.MinimumStock, m.Status, id); err != nil {
		return m, err
	}

	return r.GetByID(id)
}

// Delete refuses when material-in items still reference the material.
func (r MaterialRepository) Delete(id int64) error {
	var refs int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM material_in_items WHERE material_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "material", Msg: "masih dipakai transaksi material masuk"}
	}

	res, err := r.DB.Exec(`DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "material"}
	}
	return nil
}
