package author

import (
	"context"

	"github.com/ignite/author-registry/internal/domain"
)

// Repository defines the data access contract for authors.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create durably persists a new author with a fresh identifier.
	//
	// Returns *DuplicateError if an author with the same name already
	// exists, and *UnknownError for any other failure. Duplicate detection
	// must be enforced by the store itself (a uniqueness constraint), not
	// by a check-then-insert in application code: with concurrent callers
	// racing on the same name, exactly one create succeeds. A failed
	// create must leave no partially-applied state visible to other
	// callers.
	Create(ctx context.Context, req domain.CreateAuthorRequest) (*domain.Author, error)
}
