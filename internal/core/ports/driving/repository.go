package driving

import (
	"context"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

// RepositoryService lists the authenticated user's repositories.
type RepositoryService interface {
	// List fetches every accessible repository and applies opts.
	// It is all-or-nothing: on error no repositories are returned.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Repository, error)
}
