package github

import (
	"context"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driven"
	"github.com/custodia-labs/repolist/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.RepositorySource = (*Connector)(nil)

// Connector lists repositories through the GitHub GraphQL API.
type Connector struct {
	config    *Config
	client    *Client
	paginator *Paginator
}

// New creates a new GitHub connector.
func New(cfg *Config, tokenProvider driven.TokenProvider) *Connector {
	client := NewClient(cfg, tokenProvider)
	return &Connector{
		config:    cfg,
		client:    client,
		paginator: NewPaginator(client, cfg.PageSize, cfg.MaxPages),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "github"
}

// ListRepositories returns every repository visible to the authenticated user.
func (c *Connector) ListRepositories(ctx context.Context) ([]domain.Repository, error) {
	logger.Debug("Listing repositories from %s (page size %d)", c.config.Endpoint, c.config.PageSize)

	repos, err := c.paginator.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Fetched %d repositories", len(repos))
	return repos, nil
}

// Client returns the underlying GraphQL client.
func (c *Connector) Client() *Client {
	return c.client
}
