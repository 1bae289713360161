package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func (r EmployeeRepository) List(p domain.ListParams, department, status string) ([]models.Employee, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR code LIKE ? OR phone LIKE ? OR position LIKE ? OR department LIKE ?)")
		args = append(args, like, like, like, like, like)
	}
	if department = strings.TrimSpace(department); department != "" {
		where = append(where, "department = ?")
		args = append(args, department)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM employees WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(phone, ''),
			COALESCE(position, ''),
			COALESCE(department, ''),
			COALESCE(DATE_FORMAT(join_date, '%Y-%m-%d'), ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM employees
		WHERE `+cond+`
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Phone, &e.Position, &e.Department, &e.JoinDate, &e.Status, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r EmployeeRepository) GetByID(id int64) (models.Employee, error) {
	var e models.Employee
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(phone, ''),
			COALESCE(position, ''),
			COALESCE(department, ''),
			COALESCE(DATE_FORMAT(join_date, '%Y-%m-%d'), ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM employees
		WHERE id = ?
	`, id).Scan(&e.ID, &e.Code, &e.Name, &e.Phone, &e.Position, &e.Department, &e.JoinDate, &e.Status, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, domain.NotFoundError{Resource: "karyawan"}
	}
	return e, err
}

func (r EmployeeRepository) Create(e models.Employee) (models.Employee, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM employees WHERE code = ?`, e.Code).Scan(&exists); err != nil {
		return e, err
	}
	if exists > 0 {
		return e, domain.ConflictError{Resource: "karyawan", Msg: fmt.Sprintf("NIP %s sudah terpakai", e.Code)}
	}

	res, err := r.DB.Exec(`
		INSERT INTO employees (code, name, phone, position, department, join_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, NOW())
	`, e.Code, e.Name, e.Phone, e.Position, e.Department, e.JoinDate, e.Status)
	if err != nil {
		return e, err
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r EmployeeRepository) Update(id int64, e models.Employee) (models.Employee, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return e, err
	}
	if strings.TrimSpace(e.Code) != "" && e.Code != existing.Code {
		return e, domain.ValidationError{Field: "code", Msg: "NIP karyawan tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE employees
		SET name = ?, phone = ?, position = ?, department = ?, join_date = NULLIF(?, ''), status = ?
		WHERE id = ?
	`, e.Name, e.Phone, e.Position, e.Department, e.JoinDate, e.Status, id); err != nil {
		return e, err
	}

	return r.GetByID(id)
}

func (r EmployeeRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "karyawan"}
	}
	return nil
}
