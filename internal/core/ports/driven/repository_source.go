package driven

import (
	"context"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

// RepositorySource lists repositories from a remote hosting service.
type RepositorySource interface {
	// Type returns the source type identifier (e.g., "github").
	Type() string

	// ListRepositories returns every repository visible to the
	// authenticated user, in server order.
	// On any error no repositories are returned.
	ListRepositories(ctx context.Context) ([]domain.Repository, error)
}
