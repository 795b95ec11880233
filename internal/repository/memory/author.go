// Package memory provides an in-memory author.Repository with the same
// duplicate semantics as the Postgres adapter. Used by tests and local runs
// without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ignite/author-registry/internal/domain"
	"github.com/ignite/author-registry/internal/service/author"
)

// AuthorRepo stores authors in a map keyed by name. The mutex stands in for
// the database's uniqueness constraint: check and insert happen under one
// critical section, so concurrent creates with the same name see exactly one
// winner.
type AuthorRepo struct {
	mu     sync.Mutex
	byName map[string]domain.Author
}

// NewAuthorRepo creates an empty in-memory author repository.
func NewAuthorRepo() *AuthorRepo {
	return &AuthorRepo{byName: make(map[string]domain.Author)}
}

// Create persists a new author, or returns *author.DuplicateError if the name
// is taken.
func (r *AuthorRepo) Create(_ context.Context, req domain.CreateAuthorRequest) (*domain.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := req.Name.String()
	if _, exists := r.byName[key]; exists {
		return nil, &author.DuplicateError{Name: req.Name}
	}

	a := domain.Author{ID: uuid.New(), Name: req.Name, Email: req.Email}
	r.byName[key] = a
	return &a, nil
}

// Len reports the number of stored authors, for tests.
func (r *AuthorRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}
