package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driven"
	"github.com/custodia-labs/repolist/internal/core/ports/driving"
	"github.com/custodia-labs/repolist/internal/logger"
)

// Ensure RepositoryService implements the interface.
var _ driving.RepositoryService = (*RepositoryService)(nil)

// RepositoryService fetches the full repository list and filters it.
type RepositoryService struct {
	source driven.RepositorySource
}

// NewRepositoryService creates a new repository service.
func NewRepositoryService(source driven.RepositorySource) *RepositoryService {
	return &RepositoryService{source: source}
}

// List fetches every accessible repository, then applies the owner filter.
// Filtering happens only after the last page has arrived.
func (s *RepositoryService) List(ctx context.Context, opts domain.ListOptions) ([]domain.Repository, error) {
	repos, err := s.source.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	filter := NormaliseOwnerFilter(opts.OwnerFilter)
	if filter == "" {
		return repos, nil
	}

	filtered := FilterByOwner(repos, filter)
	logger.Debug("Owner filter %q kept %d of %d repositories", filter, len(filtered), len(repos))
	return filtered, nil
}

// NormaliseOwnerFilter converts an owner name into a resource path.
// "octocat" and "/octocat" both become "/octocat". Blank input means no filter.
func NormaliseOwnerFilter(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return ""
	}
	if !strings.HasPrefix(owner, "/") {
		owner = "/" + owner
	}
	return owner
}

// FilterByOwner keeps repositories whose owner resource path equals filter.
// The comparison is exact. Repositories without an owner never match.
func FilterByOwner(repos []domain.Repository, filter string) []domain.Repository {
	result := make([]domain.Repository, 0, len(repos))
	for i := range repos {
		if repos[i].GetOwner().GetResourcePath() == filter {
			result = append(result, repos[i])
		}
	}
	return result
}
