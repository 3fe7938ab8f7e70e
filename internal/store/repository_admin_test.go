package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/models"
)

func newTestAdminRepo(t *testing.T) (*adminRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &adminRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func adminRows(admins ...models.Admin) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at", "updated_at"})
	for _, a := range admins {
		rows.AddRow(a.ID, a.Username, a.Email, a.Password, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func TestCreateAdmin_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{
		Username: "root",
		Email:    "root@example.com",
		Password: "hash",
	}

	now := time.Now()
	stored := models.Admin{ID: 1, Username: admin.Username, Email: admin.Email, Password: admin.Password, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(admin.Username, admin.Email, admin.Password).
		WillReturnRows(adminRows(stored))

	created, err := repo.CreateAdmin(ctx, admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
}

func TestCreateAdmin_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAdmin(ctx, models.Admin{Username: "root"})
	if !errors.Is(err, ErrAdminAlreadyExists) {
		t.Fatalf("expected ErrAdminAlreadyExists, got %v", err)
	}
}

func TestFindAdminByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	stored := models.Admin{ID: 2, Username: "root", Email: "root@example.com", Password: "hash", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs(stored.Email).
		WillReturnRows(adminRows(stored))

	found, err := repo.FindAdminByEmail(ctx, stored.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != stored.ID || found.Username != stored.Username {
		t.Errorf("unexpected admin returned: %+v", found)
	}
}

func TestFindAdminByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAdminByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestExistsAdminByUsernameOrEmail_Found(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM admins").
		WithArgs("root", "root@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	exists, err := repo.ExistsAdminByUsernameOrEmail(ctx, "root", "root@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestExistsAdminByUsernameOrEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM admins").
		WithArgs("root", "root@example.com").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsAdminByUsernameOrEmail(ctx, "root", "root@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
}
