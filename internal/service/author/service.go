package author

import (
	"context"

	"github.com/ignite/author-registry/internal/domain"
	"github.com/ignite/author-registry/internal/pkg/logger"
)

// Service implements author business logic. It holds no state of its own and
// is safe to share across concurrent requests if the underlying repository is
// concurrency-safe.
type Service struct {
	repo     Repository
	metrics  Metrics
	notifier Notifier
}

// NewService creates an author service backed by the given repository and
// side-effect ports.
func NewService(repo Repository, metrics Metrics, notifier Notifier) *Service {
	return &Service{repo: repo, metrics: metrics, notifier: notifier}
}

// CreateAuthor persists the author described by req and reports the outcome.
//
// Repository errors are returned unchanged: no retry, no further translation.
// Metrics and notification failures never alter the returned result; they are
// logged and dropped, since persistence is the only operation here with a
// correctness contract.
func (s *Service) CreateAuthor(ctx context.Context, req domain.CreateAuthorRequest) (*domain.Author, error) {
	created, err := s.repo.Create(ctx, req)
	if err != nil {
		if mErr := s.metrics.RecordCreationFailure(ctx); mErr != nil {
			logger.Warn("failed to record creation failure metric", "error", mErr)
		}
		return nil, err
	}

	if mErr := s.metrics.RecordCreationSuccess(ctx); mErr != nil {
		logger.Warn("failed to record creation success metric", "error", mErr)
	}
	if nErr := s.notifier.AuthorCreated(ctx, created); nErr != nil {
		logger.Warn("author created notification failed",
			"author_id", created.ID.String(), "error", nErr)
	}

	return created, nil
}
