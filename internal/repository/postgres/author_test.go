package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignite/author-registry/internal/domain"
	"github.com/ignite/author-registry/internal/service/author"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func testRequest(t *testing.T, name string) domain.CreateAuthorRequest {
	t.Helper()
	n, err := domain.NewAuthorName(name)
	if err != nil {
		t.Fatalf("NewAuthorName(%q): %v", name, err)
	}
	return domain.NewCreateAuthorRequest(n, domain.EmailAddress{})
}

func TestCreate_Success(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WithArgs(sqlmock.AnyArg(), "Angus", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewAuthorRepo(db)
	a, err := repo.Create(context.Background(), testRequest(t, "Angus"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("created author has nil ID")
	}
	if a.Name.String() != "Angus" {
		t.Errorf("Name = %q, want %q", a.Name, "Angus")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_UniqueViolationIsDuplicate(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "authors_name_key"})
	mock.ExpectRollback()

	repo := NewAuthorRepo(db)
	_, err := repo.Create(context.Background(), testRequest(t, "Angus"))

	var dup *author.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("Create = %v, want DuplicateError", err)
	}
	if dup.Name.String() != "Angus" {
		t.Errorf("DuplicateError.Name = %q, want %q", dup.Name, "Angus")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_OtherPqErrorIsUnknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// Serialization failure: a database error, but not a unique violation.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	repo := NewAuthorRepo(db)
	_, err := repo.Create(context.Background(), testRequest(t, "Angus"))

	var unknown *author.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Create = %v, want UnknownError", err)
	}
	var dup *author.DuplicateError
	if errors.As(err, &dup) {
		t.Error("non-unique database error must not be classified as duplicate")
	}
}

func TestCreate_ConnectionDropIsUnknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WillReturnError(errors.New("driver: bad connection"))
	mock.ExpectRollback()

	repo := NewAuthorRepo(db)
	_, err := repo.Create(context.Background(), testRequest(t, "Angus"))

	var unknown *author.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Create = %v, want UnknownError", err)
	}
}

func TestCreate_BeginFailureIsUnknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	repo := NewAuthorRepo(db)
	_, err := repo.Create(context.Background(), testRequest(t, "Angus"))

	var unknown *author.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Create = %v, want UnknownError", err)
	}
}

func TestCreate_CommitFailureIsUnknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset during commit"))

	repo := NewAuthorRepo(db)
	_, err := repo.Create(context.Background(), testRequest(t, "Angus"))

	var unknown *author.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Create = %v, want UnknownError", err)
	}
}

func TestCreate_EmailPersistedWhenPresent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO authors").
		WithArgs(sqlmock.AnyArg(), "Angus", sql.NullString{String: "angus@example.com", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	name, _ := domain.NewAuthorName("Angus")
	email, err := domain.NewEmailAddress("angus@example.com")
	if err != nil {
		t.Fatalf("NewEmailAddress: %v", err)
	}

	repo := NewAuthorRepo(db)
	a, err := repo.Create(context.Background(), domain.NewCreateAuthorRequest(name, email))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Email.String() != "angus@example.com" {
		t.Errorf("Email = %q, want %q", a.Email, "angus@example.com")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("23505 should be classified as a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("foreign-key violation must not be classified as unique violation")
	}
	if isUniqueViolation(errors.New("23505")) {
		t.Error("plain error mentioning the code must not match")
	}
}
