package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) List(p domain.ListParams, role, status string) ([]models.User, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, "(name LIKE ? OR username LIKE ? OR email LIKE ? OR phone LIKE ?)")
		args = append(args, like, like, like, like)
	}
	if role = strings.TrimSpace(role); role != "" {
		where = append(where, "role = ?")
		args = append(args, role)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(username, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(role, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM users
		WHERE `+cond+`
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(username, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(role, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// GetCredentials loads the user plus password hash by email or username.
func (r UserRepository) GetCredentials(identity string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(username, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(password_hash, ''),
			COALESCE(role, ''),
			COALESCE(status, '')
		FROM users
		WHERE email = ? OR username = ?
	`, identity, identity).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return u, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (models.User, error) {
	var exists int
	if err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, u.Email, u.Username).Scan(&exists); err != nil {
		return u, err
	}
	if exists > 0 {
		return u, domain.ConflictError{Resource: "user", Msg: "email atau username sudah terdaftar"}
	}

	res, err := r.DB.Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role, u.Status)
	if err != nil {
		return u, err
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

// Update rewrites profile fields. Username is the business key and stays
// immutable; the password only changes when a new hash is supplied.
func (r UserRepository) Update(id int64, u models.User, passwordHash string) (models.User, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return u, err
	}
	if strings.TrimSpace(u.Username) != "" && u.Username != existing.Username {
		return u, domain.ValidationError{Field: "username", Msg: "username tidak dapat diubah"}
	}

	if _, err := r.DB.Exec(`
		UPDATE users SET name = ?, email = ?, phone = ?, role = ?, status = ?, updated_at = NOW() WHERE id = ?
	`, u.Name, u.Email, u.Phone, u.Role, u.Status, id); err != nil {
		return u, err
	}

	if passwordHash != "" {
		if _, err := r.DB.Exec(`
			UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?
		`, passwordHash, id); err != nil {
			return u, err
		}
	}

	return r.GetByID(id)
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
