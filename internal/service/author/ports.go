package author

import (
	"context"

	"github.com/ignite/author-registry/internal/domain"
)

// Metrics records creation outcomes. Calls are best-effort: implementations
// report errors by returning them, and the service logs and discards them.
type Metrics interface {
	RecordCreationSuccess(ctx context.Context) error
	RecordCreationFailure(ctx context.Context) error
}

// Notifier announces newly created authors (e.g. by email). Best-effort, same
// error policy as Metrics.
type Notifier interface {
	AuthorCreated(ctx context.Context, a *domain.Author) error
}
