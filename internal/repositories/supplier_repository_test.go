package repositories

import (
	"testing"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func supplierColumns() []string {
	return []string{"id", "code", "name", "tax_number", "status", "created_at"}
}

func TestSupplierListReturnsPageAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM suppliers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery("FROM suppliers s").
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(supplierColumns()).
			AddRow(11, "SUP-011", "PT Sebelas", "", "aktif", "").
			AddRow(10, "SUP-010", "PT Sepuluh", "", "aktif", ""))
	mock.ExpectQuery("FROM supplier_addresses").
		WithArgs(int64(11), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "id", "line", "city", "province_code", "postal_code", "is_primary"}).
			AddRow(11, 1, "Jl. Utama", "Jakarta", "31", "10110", true))
	mock.ExpectQuery("FROM supplier_contacts").
		WithArgs(int64(11), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "id", "name", "phone", "email", "is_primary"}))

	repo := SupplierRepository{DB: db}
	suppliers, total, err := repo.List(domain.ListParams{Page: 2, Limit: 10}, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 23 {
		t.Fatalf("total = %d, want 23", total)
	}
	if len(suppliers) != 2 {
		t.Fatalf("page size = %d, want 2", len(suppliers))
	}
	if len(suppliers[0].Addresses) != 1 || suppliers[0].Addresses[0].City != "Jakarta" {
		t.Fatalf("children not attached: %+v", suppliers[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSupplierCreateDuplicateCodeConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM suppliers WHERE code").
		WithArgs("SUP-001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := SupplierRepository{DB: db}
	_, err = repo.Create(models.Supplier{Code: "SUP-001", Name: "PT Maju"})
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestSupplierUpdateRejectsCodeChange(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM suppliers").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(supplierColumns()).
			AddRow(7, "SUP-007", "PT Maju", "", "aktif", ""))
	mock.ExpectQuery("FROM supplier_addresses").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "id", "line", "city", "province_code", "postal_code", "is_primary"}))
	mock.ExpectQuery("FROM supplier_contacts").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "id", "name", "phone", "email", "is_primary"}))

	repo := SupplierRepository{DB: db}
	_, err = repo.Update(7, models.Supplier{Code: "SUP-BARU", Name: "PT Maju"})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSupplierDeleteRefusedWhenReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM material_in").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := SupplierRepository{DB: db}
	if err := repo.Delete(7); !domain.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestNormalizePrimaryAddresses(t *testing.T) {
	addrs := normalizePrimaryAddresses([]models.SupplierAddress{
		{Line: "A", IsPrimary: true},
		{Line: "B", IsPrimary: true},
		{Line: "C"},
	})
	if !addrs[0].IsPrimary || addrs[1].IsPrimary || addrs[2].IsPrimary {
		t.Fatalf("first primary must win: %+v", addrs)
	}

	addrs = normalizePrimaryAddresses([]models.SupplierAddress{
		{Line: "A"},
		{Line: "B"},
	})
	if !addrs[0].IsPrimary {
		t.Fatalf("first element becomes primary when none flagged: %+v", addrs)
	}

	if out := normalizePrimaryAddresses(nil); len(out) != 0 {
		t.Fatalf("empty input stays empty")
	}
}
