package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/util"
)

// MaterialInRepository handles purchase transactions. Line totals and the
// grand total are recalculated before every write; the transaction number is
// minted inside the insert transaction.
type MaterialInRepository struct {
	DB *sql.DB
}

func (r MaterialInRepository) List(p domain.ListParams, supplierID int64, paymentStatus string) ([]models.MaterialIn, int, error) {
	p = p.Normalize()

	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(p.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, `(mi.transaction_no LIKE ? OR sp.name LIKE ? OR mi.payment_status LIKE ?
			OR EXISTS (SELECT 1 FROM material_in_items mii
				JOIN materials m ON m.id = mii.material_id
				WHERE mii.material_in_id = mi.id AND m.name LIKE ?))`)
		args = append(args, like, like, like, like)
	}
	if supplierID > 0 {
		where = append(where, "mi.supplier_id = ?")
		args = append(args, supplierID)
	}
	if paymentStatus = strings.TrimSpace(paymentStatus); paymentStatus != "" {
		where = append(where, "mi.payment_status = ?")
		args = append(args, paymentStatus)
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM material_in mi
		LEFT JOIN suppliers sp ON sp.id = mi.supplier_id
		WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT
			mi.id,
			COALESCE(mi.transaction_no, ''),
			COALESCE(mi.supplier_id, 0),
			COALESCE(sp.name, ''),
			COALESCE(DATE_FORMAT(mi.date, '%Y-%m-%d'), ''),
			COALESCE(mi.tax, 0),
			COALESCE(mi.other_costs, 0),
			COALESCE(mi.grand_total, 0),
			COALESCE(mi.payment_status, ''),
			COALESCE(DATE_FORMAT(mi.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM material_in mi
		LEFT JOIN suppliers sp ON sp.id = mi.supplier_id
		WHERE `+cond+`
		ORDER BY mi.id DESC
		LIMIT ? OFFSET ?
	`, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.MaterialIn{}
	ids := []int64{}
	for rows.Next() {
		var m models.MaterialIn
		if err := rows.Scan(&m.ID, &m.TransactionNo, &m.SupplierID, &m.SupplierName, &m.Date,
			&m.Tax, &m.OtherCosts, &m.GrandTotal, &m.PaymentStatus, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(list, ids); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r MaterialInRepository) attachItems(list []models.MaterialIn, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	byID := map[int64]*models.MaterialIn{}
	for i := range list {
		args[i] = ids[i]
		byID[list[i].ID] = &list[i]
	}

	rows, err := r.DB.Query(`
		SELECT
			mii.material_in_id,
			mii.id,
			mii.material_id,
			COALESCE(m.name, ''),
			COALESCE(mii.quantity, 0),
			COALESCE(mii.unit_price, 0),
			COALESCE(mii.total, 0)
		FROM material_in_items mii
		LEFT JOIN materials m ON m.id = mii.material_id
		WHERE mii.material_in_id IN (`+placeholders+`)
		ORDER BY mii.id
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var parent int64
		var it models.MaterialInItem
		if err := rows.Scan(&parent, &it.ID, &it.MaterialID, &it.MaterialName, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return err
		}
		if m := byID[parent]; m != nil {
			m.Items = append(m.Items, it)
		}
	}
	return rows.Err()
}

func (r MaterialInRepository) GetByID(id int64) (models.MaterialIn, error) {
	var m models.MaterialIn
	err := r.DB.QueryRow(`
		SELECT
			mi.id,
			COALESCE(mi.transaction_no, ''),
			COALESCE(mi.supplier_id, 0),
			COALESCE(sp.name, ''),
			COALESCE(DATE_FORMAT(mi.date, '%Y-%m-%d'), ''),
			COALESCE(mi.tax, 0),
			COALESCE(mi.other_costs, 0),
			COALESCE(mi.grand_total, 0),
			COALESCE(mi.payment_status, ''),
			COALESCE(DATE_FORMAT(mi.created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM material_in mi
		LEFT JOIN suppliers sp ON sp.id = mi.supplier_id
		WHERE mi.id = ?
	`, id).Scan(&m.ID, &m.TransactionNo, &m.SupplierID, &m.SupplierName, &m.Date,
		&m.Tax, &m.OtherCosts, &m.GrandTotal, &m.PaymentStatus, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, domain.NotFoundError{Resource: "transaksi material masuk"}
		}
		return m, err
	}

	list := []models.MaterialIn{m}
	if err := r.attachItems(list, []int64{m.ID}); err != nil {
		return m, err
	}
	return list[0], nil
}

// Create recalculates derived fields, mints the next MI number for the
// transaction date and inserts header + items atomically.
func (r MaterialInRepository) Create(m models.MaterialIn) (models.MaterialIn, error) {
	m.Recalculate()

	date, err := util.ParseDate(m.Date)
	if err != nil {
		return m, domain.ValidationError{Field: "date", Msg: "format tanggal harus YYYY-MM-DD"}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return m, err
	}
	defer tx.Rollback()

	// lock the day's numbers so concurrent creates cannot mint duplicates
	var last sql.NullString
	if err := tx.QueryRow(`
		SELECT MAX(transaction_no) FROM material_in WHERE transaction_no LIKE ? FOR UPDATE
	`, domain.NumberPrefix("MI", date)).Scan(&last); err != nil {
		return m, err
	}
	m.TransactionNo = domain.FormatNumber("MI", date, domain.ParseSequence(last.String)+1)

	res, err := tx.Exec(`
		INSERT INTO material_in (transaction_no, supplier_id, date, tax, other_costs, grand_total, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, m.TransactionNo, m.SupplierID, m.Date, m.Tax, m.OtherCosts, m.GrandTotal, m.PaymentStatus)
	if err != nil {
		return m, err
	}
	id, _ := res.LastInsertId()

	for _, it := range m.Items {
		if _, err := tx.Exec(`
			INSERT INTO material_in_items (material_in_id, material_id, quantity, unit_price, total)
			VALUES (?, ?, ?, ?, ?)
		`, id, it.MaterialID, it.Quantity, it.UnitPrice, it.Total); err != nil {
			return m, err
		}
	}

	if err := tx.Commit(); err != nil {
		return m, err
	}

	return r.GetByID(id)
}

// Update replaces header fields and items. The transaction number is
// immutable once minted.
func (r MaterialInRepository) Update(id int64, m models.MaterialIn) (models.MaterialIn, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return m, err
	}
	if strings.TrimSpace(m.TransactionNo) != "" && m.TransactionNo != existing.TransactionNo {
		return m, domain.ValidationError{Field: "transactionNo", Msg: "nomor transaksi tidak dapat diubah"}
	}

	m.Recalculate()

	tx, err := r.DB.Begin()
	if err != nil {
		return m, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE material_in
		SET supplier_id = ?, date = ?, tax = ?, other_costs = ?, grand_total = ?, payment_status = ?
		WHERE id = ?
	`, m.SupplierID, m.Date, m.Tax, m.OtherCosts, m.GrandTotal, m.PaymentStatus, id); err != nil {
		return m, err
	}

	if _, err := tx.Exec(`DELETE FROM material_in_items WHERE material_in_id = ?`, id); err != nil {
		return m, err
	}
	for _, it := range m.Items {
		if _, err := tx.Exec(`
			INSERT INTO material_in_items (material_in_id, material_id, quantity, unit_price, total)
			VALUES (?, ?, ?, ?, ?)
		`, id, it.MaterialID, it.Quantity, it.UnitPrice, it.Total); err != nil {
			return m, err
		}
	}

	if err := tx.Commit(); err != nil {
		return m, err
	}

	return r.GetByID(id)
}

func (r MaterialInRepository) Delete(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM material_in_items WHERE material_in_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM material_in WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "transaksi material masuk"}
	}

	return tx.Commit()
}
