package repositories

import (
	"testing"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDeleteProvinceWithRegenciesConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM provinces WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).AddRow(1, "31", "DKI Jakarta"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM regencies").
		WithArgs("31").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	repo := RegionRepository{DB: db}
	if err := repo.DeleteProvince(1); !domain.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestCreateRegencyRequiresParentProvince(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM provinces WHERE code").
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := RegionRepository{DB: db}
	_, err = repo.CreateRegency(models.Regency{Code: "9901", ProvinceCode: "99", Name: "Tidak Ada"})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error for missing parent, got %v", err)
	}
}

func TestUpdateProvinceRejectsCodeChange(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM provinces WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).AddRow(1, "31", "DKI Jakarta"))

	repo := RegionRepository{DB: db}
	_, err = repo.UpdateProvince(1, models.Province{Code: "32", Name: "Jawa Barat"})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}
