package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumns = []string{"id", "email", "given_names", "surname", "password_hash", "created_at", "updated_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(u.ID, u.Email, u.GivenNames, u.Surname, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		Email:        "a@x.com",
		GivenNames:   "Ana",
		Surname:      "Diaz",
		PasswordHash: "$2a$12$hash",
	}

	stored := user
	stored.ID = 1
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.GivenNames, user.Surname, user.PasswordHash).
		WillReturnRows(userRows(stored))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	stored := models.User{ID: 7, Email: "a@x.com", GivenNames: "Ana", Surname: "Diaz", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("a@x.com").
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	stored := models.User{ID: 42, Email: "a@x.com", GivenNames: "Ana", Surname: "Diaz", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(42)).
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", found.Email)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	newSurname := "Gonzalez"
	stored := models.User{ID: 1, Email: "a@x.com", GivenNames: "Ana", Surname: newSurname, PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("UPDATE users").
		WithArgs(newSurname, int64(1)).
		WillReturnRows(userRows(stored))

	updated, err := repo.UpdateUser(context.Background(), 1, models.UserPatch{Surname: &newSurname})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Surname != newSurname {
		t.Errorf("expected surname %s, got %s", newSurname, updated.Surname)
	}
}

func TestUpdateUser_EmptyPatch(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateUser(context.Background(), 1, models.UserPatch{})
	if !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	taken := "taken@x.com"
	mock.ExpectQuery("UPDATE users").
		WithArgs(taken, int64(1)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(context.Background(), 1, models.UserPatch{Email: &taken})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	surname := "Diaz"
	mock.ExpectQuery("UPDATE users").
		WithArgs(surname, int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(context.Background(), 404, models.UserPatch{Surname: &surname})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
