package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) List(p domain.ListParams, custType, status string) ([]models.Customer, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, `(c.name LIKE ? OR c.code LIKE ?
			OR EXISTS (SELECT 1 FROM customer_contacts cc WHERE cc.customer_id = c.id
				AND (cc.name LIKE ? OR cc.phone LIKE ? OR cc.email LIKE ?))
			OR EXISTS (SELECT 1 FROM customer_addresses ca WHERE ca.customer_id = c.id
				AND ca.line LIKE ?))`)
		args = append(args, like, like, like, like, like, like)
	}
	if custType = strings.TrimSpace(custType); custType != "" {
		where = append(where, "c.type = ?")
		args = append(args, custType)
	}
	if status = strings.TrimSpace(status); status != "" {
		where = append(where, "c.status = ?")
		args = append(args, status)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers c WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			c.id,
			COALESCE(c.code, ''),
			COALESCE(c.name, ''),
			COALESCE(c.type, ''),
			COALESCE(c.status, ''),
			COALESCE(DATE_FORMAT(c.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM customers c
		WHERE `+cond+`
		ORDER BY c.id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	ids := []int64{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Type, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachChildren(customers, ids); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r CustomerRepository) attachChildren(customers []models.Customer, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	byID := map[int64]*models.Customer{}
	for i := range customers {
		args[i] = ids[i]
		byID[customers[i].ID] = &customers[i]
	}

	addrRows, err := r.DB.Query(`
		SELECT customer_id, id, COALESCE(line, ''), COALESCE(city, ''),
			COALESCE(province_code, ''), COALESCE(postal_code, ''), is_primary
		FROM customer_addresses
		WHERE customer_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return err
	}
	defer addrRows.Close()
	for addrRows.Next() {
		var cid int64
		var a models.CustomerAddress
		if err := addrRows.Scan(&cid, &a.ID, &a.Line, &a.City, &a.ProvinceCode, &a.PostalCode, &a.IsPrimary); err != nil {
			return err
		}
		if c := byID[cid]; c != nil {
			c.Addresses = append(c.Addresses, a)
		}
	}
	if err := addrRows.Err(); err != nil {
		return err
	}

	ctRows, err := r.DB.Query(`
		SELECT customer_id, id, COALESCE(name, ''), COALESCE(phone, ''),
			COALESCE(email, ''), is_primary
		FROM customer_contacts
		WHERE customer_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return err
	}
	defer ctRows.Close()
	for ctRows.Next() {
		var cid int64
		var ct models.CustomerContact
		if err := ctRows.Scan(&cid, &ct.ID, &ct.Name, &ct.Phone, &ct.Email, &ct.IsPrimary); err != nil {
			return err
		}
		if c := byID[cid]; c != nil {
			c.Contacts = append(c.Contacts, ct)
		}
	}
	return ctRows.Err()
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(name, ''),
			COALESCE(type, ''),
			COALESCE(status, ''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM customers
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Code, &c.Name, &c.Type, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "customer"}
		}
		return c, err
	}

	customers := []models.Customer{c}
	if err := r.attachChildren(customers, []int64{c.ID}); err != nil {
		return c, err
	}
	return customers[0], nil
}

func (r CustomerRepository) Create(c models.Customer) (models.Customer, error) {
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers WHERE code = ?`, c.Code).Scan(&exists); err != nil {
		return c, err
	}
	if exists > 0 {
		return c, domain.ConflictError{Resource: "customer", Msg: fmt.Sprintf("kode %s sudah terpakai", c.Code)}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return c, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO customers (code, name, type, status, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, c.Code, c.Name, c.Type, c.Status)
	if err != nil {
		return c, err
	}
	id, _ := res.LastInsertId()

	c.Addresses = normalizeCustomerAddresses(c.Addresses)
	c.Contacts = normalizeCustomerContacts(c.Contacts)

	if err := insertCustomerChildren(tx, id, c); err != nil {
		return c, err
	}

	if err := tx.Commit(); err != nil {
		return c, err
	}

	return r.GetByID(id)
}

func (r CustomerRepository) Update(id int64, c models.Customer) (models.Customer, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return c, err
	}
	if strings.TrimSpace(c.Code) != "" && c.Code != existing.Code {
		return c, domain.ValidationError{Field: "code", Msg: "kode customer tidak dapat diubah"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return c, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE customers SET name = ?, type = ?, status = ? WHERE id = ?
	`, c.Name, c.Type, c.Status, id); err != nil {
		return c, err
	}

	if _, err := tx.Exec(`DELETE FROM customer_addresses WHERE customer_id = ?`, id); err != nil {
		return c, err
	}
	if _, err := tx.Exec(`DELETE FROM customer_contacts WHERE customer_id = ?`, id); err != nil {
		return c, err
	}

	c.Addresses = normalizeCustomerAddresses(c.Addresses)
	c.Contacts = normalizeCustomerContacts(c.Contacts)

	if err := insertCustomerChildren(tx, id, c); err != nil {
		return c, err
	}

	if err := tx.Commit(); err != nil {
		return c, err
	}

	return r.GetByID(id)
}

// Delete refuses when surveys still reference the customer.
func (r CustomerRepository) Delete(id int64) error {
	var refs int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM surveys WHERE customer_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "customer", Msg: "masih dipakai data survey"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM customer_addresses WHERE customer_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM customer_contacts WHERE customer_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "customer"}
	}

	return tx.Commit()
}

func insertCustomerChildren(tx *sql.Tx, id int64, c models.Customer) error {
	for _, a := range c.Addresses {
		if _, err := tx.Exec(`
			INSERT INTO customer_addresses (customer_id, line, city, province_code, postal_code, is_primary)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, a.Line, a.City, a.ProvinceCode, a.PostalCode, a.IsPrimary); err != nil {
			return err
		}
	}
	for _, ct := range c.Contacts {
		if _, err := tx.Exec(`
			INSERT INTO customer_contacts (customer_id, name, phone, email, is_primary)
			VALUES (?, ?, ?, ?, ?)
		`, id, ct.Name, ct.Phone, ct.Email, ct.IsPrimary); err != nil {
			return err
		}
	}
	return nil
}

func normalizeCustomerAddresses(addrs []models.CustomerAddress) []models.CustomerAddress {
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

func normalizeCustomerContacts(contacts []models.CustomerContact) []models.CustomerContact {
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
