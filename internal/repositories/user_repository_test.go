package repositories

import (
	"testing"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetCredentialsByEmailOrUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "name", "username", "email", "phone", "password_hash", "role", "status"}
	mock.ExpectQuery("FROM users").
		WithArgs("admin", "admin").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Admin", "admin", "admin@simago.id", "", "$2a$10$hash", "admin", "aktif"))

	repo := UserRepository{DB: db}
	u, hash, err := repo.GetCredentials("admin")
	if err != nil {
		t.Fatalf("GetCredentials error: %v", err)
	}
	if u.Username != "admin" || u.Role != "admin" {
		t.Fatalf("user = %+v", u)
	}
	if hash != "$2a$10$hash" {
		t.Fatalf("hash = %q", hash)
	}
}

func TestGetCredentialsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "name", "username", "email", "phone", "password_hash", "role", "status"}
	mock.ExpectQuery("FROM users").
		WithArgs("ghost", "ghost").
		WillReturnRows(sqlmock.NewRows(cols))

	repo := UserRepository{DB: db}
	if _, _, err := repo.GetCredentials("ghost"); !domain.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestUserCreateDuplicateConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs("admin@simago.id", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := UserRepository{DB: db}
	_, err = repo.Create(models.User{Username: "admin", Email: "admin@simago.id"}, "hash")
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}
