package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignite/author-registry/internal/domain"
	"github.com/ignite/author-registry/internal/service/author"
)

// AuthorRepo implements author.Repository against PostgreSQL.
//
// Name uniqueness is enforced by the UNIQUE constraint on authors.name, never
// by a check-then-insert in this code: under concurrent creates with the same
// name, the database guarantees exactly one insert wins.
type AuthorRepo struct{ db *sql.DB }

// NewAuthorRepo creates a Postgres-backed author repository.
func NewAuthorRepo(db *sql.DB) *AuthorRepo { return &AuthorRepo{db: db} }

// EnsureSchema creates the authors table if it does not exist.
func (r *AuthorRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS authors (
			id    TEXT PRIMARY KEY,
			name  TEXT UNIQUE NOT NULL,
			email TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure authors schema: %w", err)
	}
	return nil
}

// Create inserts a new author inside a single transaction.
//
// A unique-violation on the name column rolls back and returns
// *author.DuplicateError; every other failure, including commit failure,
// returns *author.UnknownError. A failed commit is indeterminate: the caller
// must not retry, since the insert may have been applied.
func (r *AuthorRepo) Create(ctx context.Context, req domain.CreateAuthorRequest) (*domain.Author, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &author.UnknownError{Cause: fmt.Errorf("begin transaction: %w", err)}
	}

	id := uuid.New()
	var email sql.NullString
	if !req.Email.IsZero() {
		email = sql.NullString{String: req.Email.String(), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO authors (id, name, email) VALUES ($1, $2, $3)
	`, id.String(), req.Name.String(), email)
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return nil, &author.DuplicateError{Name: req.Name}
		}
		return nil, &author.UnknownError{Cause: fmt.Errorf("insert author: %w", err)}
	}

	if err := tx.Commit(); err != nil {
		return nil, &author.UnknownError{Cause: fmt.Errorf("commit transaction: %w", err)}
	}

	return &domain.Author{ID: id, Name: req.Name, Email: req.Email}, nil
}

// uniqueViolation is the Postgres error code for a uniqueness-constraint
// violation. Kept behind isUniqueViolation so the vendor code appears exactly
// once.
const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
