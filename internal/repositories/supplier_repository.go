package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

// SupplierRepository wraps DB access for suppliers plus their address and
// contact child tables. Children are written transactionally.
type SupplierRepository struct {
	DB *sql.DB
}

// List returns one page plus the unpaginated total. search covers the same
// fields the global-filter predicate does; status filters exact.
func (r SupplierRepository) List(p domain.ListParams, status string) ([]models.Supplier, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, `(s.name LIKE ? OR s.code LIKE ? OR s.tax_number LIKE ?
			OR EXISTS (SELECT 1 FROM supplier_contacts sc WHERE sc.supplier_id = s.id
				AND (sc.name LIKE ? OR sc.phone LIKE ? OR sc.email LIKE ?))
			OR EXISTS (SELECT 1 FROM supplier_addresses sa WHERE sa.supplier_id = s.id
				AND sa.line LIKE ?))`)
		args = append(args, like, like, like, like, like, like, like)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "s.status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM suppliers s WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			s.id,
			COALESCE(s.code, ''),
			COALESCE(s.name, ''),
			COALESCE(s.tax_number, ''),
			COALESCE(s.status, ''),
			COALESCE(DATE_FORMAT(s.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM suppliers s
		WHERE `+cond+`
		ORDER BY s.id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	ids := []int64{}
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.TaxNumber, &s.Status, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachChildren(suppliers, ids); err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

func (r SupplierRepository) attachChildren(suppliers []models.Supplier, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	byID := map[int64]*models.Supplier{}
	for i := range suppliers {
		args[i] = ids[i]
		byID[suppliers[i].ID] = &suppliers[i]
	}

	addrRows, err := r.DB.Query(`
		SELECT supplier_id, id, COALESCE(line, ''), COALESCE(city, ''),
			COALESCE(province_code, ''), COALESCE(postal_code, ''), is_primary
		FROM supplier_addresses
		WHERE supplier_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return err
	}
	defer addrRows.Close()
	for addrRows.Next() {
		var sid int64
		var a models.SupplierAddress
		if err := addrRows.Scan(&sid, &a.ID, &a.Line, &a.City, &a.ProvinceCode, &a.PostalCode, &a.IsPrimary); err != nil {
			return err
		}
		if s := byID[sid]; s != nil {
			s.Addresses = append(s.Addresses, a)
		}
	}
	if err := addrRows.Err(); err != nil {
		return err
	}

	ctRows, err := r.DB.Query(`
		SELECT supplier_id, id, COALESCE(name, ''), COALESCE(phone, ''),
			COALESCE(email, ''), is_primary
		FROM supplier_contacts
		WHERE supplier_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return err
	}
	defer ctRows.Close()
	for ctRows.Next() {
		var sid int64
		var c models.SupplierContact
		if err := ctRows.Scan(&sid, &c.ID, &c.Name, &c.Phone, &c.Email, &c.IsPrimary); err != nil {
			return err
		}
		if s := byID[sid]; s != nil {
			s.Contacts = append(s.Contacts, c)
		}
	}
	return ctRows.Err()
}

func (r SupplierRepository) GetByID(id int64) (models.Supplier, error) {
	var s models.Supplier
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(tax_number, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM suppliers
		WHERE id = ?
	`, id).Scan(&s.ID, &s.Code, &s.Name, &s.TaxNumber, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "supplier"}
		}
		return s, err
	}

	suppliers := []models.Supplier{s}
	if err := r.attachChildren(suppliers, []int64{s.ID}); err != nil {
		return s, err
	}
	return suppliers[0], nil
}

// Create inserts the supplier and its children in one transaction. Duplicate
// code is a conflict.
func (r SupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM suppliers WHERE code = ?`, s.Code).Scan(&exists); err != nil {
		return s, err
	}
	if exists > 0 {
		return s, domain.ConflictError{Resource: "supplier", Msg: fmt.Sprintf("kode %s sudah terpakai", s.Code)}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return s, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO suppliers (code, name, tax_number, status, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, s.Code, s.Name, s.TaxNumber, s.Status)
	if err != nil {
		return s, err
	}
	id, _ := res.LastInsertId()
	s.ID = id

	s.Addresses = normalizePrimaryAddresses(s.Addresses)
	s.Contacts = normalizePrimaryContacts(s.Contacts)

	for _, a := range s.Addresses {
		if _, err := tx.Exec(`
			INSERT INTO supplier_addresses (supplier_id, line, city, province_code, postal_code, is_primary)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, a.Line, a.City, a.ProvinceCode, a.PostalCode, a.IsPrimary); err != nil {
			return s, err
		}
	}
	for _, c := range s.Contacts {
		if _, err := tx.Exec(`
			INSERT INTO supplier_contacts (supplier_id, name, phone, email, is_primary)
			VALUES (?, ?, ?, ?, ?)
		`, id, c.Name, c.Phone, c.Email, c.IsPrimary); err != nil {
			return s, err
		}
	}

	if err := tx.Commit(); err != nil {
		return s, err
	}

	return r.GetByID(id)
}

// Update rewrites descriptive fields and replaces children. The business code
// is immutable after creation.
func (r SupplierRepository) Update(id int64, s models.Supplier) (models.Supplier, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return s, err
	}
	if strings.TrimSpace(s.Code) != "" && s.Code != existing.Code {
		return s, domain.ValidationError{Field: "code", Msg: "kode supplier tidak dapat diubah"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return s, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE suppliers SET name = ?, tax_number = ?, status = ? WHERE id = ?
	`, s.Name, s.TaxNumber, s.Status, id); err != nil {
		return s, err
	}

	if _, err := tx.Exec(`DELETE FROM supplier_addresses WHERE supplier_id = ?`, id); err != nil {
		return s, err
	}
	if _, err := tx.Exec(`DELETE FROM supplier_contacts WHERE supplier_id = ?`, id); err != nil {
		return s, err
	}

	s.Addresses = normalizePrimaryAddresses(s.Addresses)
	s.Contacts = normalizePrimaryContacts(s.Contacts)

	for _, a := range s.Addresses {
		if _, err := tx.Exec(`
			INSERT INTO supplier_addresses (supplier_id, line, city, province_code, postal_code, is_primary)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, a.Line, a.City, a.ProvinceCode, a.PostalCode, a.IsPrimary); err != nil {
			return s, err
		}
	}
	for _, c := range s.Contacts {
		if _, err := tx.Exec(`
			INSERT INTO supplier_contacts (supplier_id, name, phone, email, is_primary)
			VALUES (?, ?, ?, ?, ?)
		`, id, c.Name, c.Phone, c.Email, c.IsPrimary); err != nil {
			return s, err
		}
	}

	if err := tx.Commit(); err != nil {
		return s, err
	}

	return r.GetByID(id)
}

// Delete refuses when material-in transactions still reference the supplier.
func (r SupplierRepository) Delete(id int64) error {
	var refs int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM material_in WHERE supplier_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "supplier", Msg: "masih dipakai transaksi material masuk"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM supplier_addresses WHERE supplier_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM supplier_contacts WHERE supplier_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "supplier"}
	}

	return tx.Commit()
}

// normalizePrimaryAddresses keeps exactly one primary: the first flagged one
// wins, the rest are demoted; with no flag the first element becomes primary.
func normalizePrimaryAddresses(addrs []models.SupplierAddress) []models.SupplierAddress {
	seen := false
	for i := range addrs {
		if addrs[i].IsPrimary {
			if seen {
				addrs[i].IsPrimary = false
			}
			seen = true
		}
	}
	if !seen && len(addrs) > 0 {
		addrs[0].IsPrimary = true
	}
	return addrs
}

func normalizePrimaryContacts(contacts []models.SupplierContact) []models.SupplierContact {
	seen := false
	for i := range contacts {
		if contacts[i].IsPrimary {
			if seen {
				contacts[i].IsPrimary = false
			}
			seen = true
		}
	}
	if !seen && len(contacts) > 0 {
		contacts[0].IsPrimary = true
	}
	return contacts
}
