package repositories

import (
	"testing"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func materialInColumns() []string {
	return []string{"id", "transaction_no", "supplier_id", "supplier_name", "date",
		"tax", "other_costs", "grand_total", "payment_status", "created_at"}
}

func itemColumns() []string {
	return []string{"material_in_id", "id", "material_id", "name", "quantity", "unit_price", "total"}
}

func TestMaterialInCreateMintsNextNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT MAX\\(transaction_no\\) FROM material_in").
		WithArgs("MI-20260829-%").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow("MI-20260829-0002"))
	mock.ExpectExec("INSERT INTO material_in ").
		WithArgs("MI-20260829-0003", int64(5), "2026-08-29", int64(10000), int64(6500), int64(91500), "lunas").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO material_in_items").
		WithArgs(int64(9), int64(1), int64(3), int64(15000), int64(45000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO material_in_items").
		WithArgs(int64(9), int64(2), int64(2), int64(15000), int64(30000)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("FROM material_in mi").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(materialInColumns()).
			AddRow(9, "MI-20260829-0003", 5, "PT Sumber", "2026-08-29", 10000, 6500, 91500, "lunas", "2026-08-29 10:00:00"))
	mock.ExpectQuery("FROM material_in_items mii").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(itemColumns()).
			AddRow(9, 1, 1, "Kardus", 3, 15000, 45000).
			AddRow(9, 2, 2, "Lakban", 2, 15000, 30000))

	repo := MaterialInRepository{DB: db}
	got, err := repo.Create(models.MaterialIn{
		SupplierID: 5,
		Date:       "2026-08-29",
		Items: []models.MaterialInItem{
			{MaterialID: 1, Quantity: 3, UnitPrice: 15000},
			{MaterialID: 2, Quantity: 2, UnitPrice: 15000},
		},
		Tax:           10000,
		OtherCosts:    6500,
		PaymentStatus: "lunas",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.TransactionNo != "MI-20260829-0003" {
		t.Fatalf("transaction no = %q", got.TransactionNo)
	}
	if got.GrandTotal != 91500 {
		t.Fatalf("grand total = %d, want 91500", got.GrandTotal)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMaterialInCreateRejectsBadDate(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := MaterialInRepository{DB: db}
	_, err = repo.Create(models.MaterialIn{
		SupplierID:    5,
		Date:          "29-08-2026",
		Items:         []models.MaterialInItem{{MaterialID: 1, Quantity: 1, UnitPrice: 100}},
		PaymentStatus: "lunas",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestMaterialInUpdateKeepsTransactionNo(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM material_in mi").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(materialInColumns()).
			AddRow(9, "MI-20260829-0003", 5, "PT Sumber", "2026-08-29", 0, 0, 45000, "lunas", ""))
	mock.ExpectQuery("FROM material_in_items mii").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(itemColumns()).
			AddRow(9, 1, 1, "Kardus", 3, 15000, 45000))

	repo := MaterialInRepository{DB: db}
	_, err = repo.Update(9, models.MaterialIn{
		TransactionNo: "MI-20260829-9999",
		SupplierID:    5,
		Date:          "2026-08-29",
		Items:         []models.MaterialInItem{{MaterialID: 1, Quantity: 1, UnitPrice: 100}},
		PaymentStatus: "lunas",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error for changed number, got %v", err)
	}
}

func TestMaterialInDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM material_in_items").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM material_in ").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := MaterialInRepository{DB: db}
	if err := repo.Delete(404); !domain.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}
