package auth

import (
	"context"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider provides a fixed Personal Access Token.
// PATs don't expire and don't require refresh.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a token provider for PAT-based authentication.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the PAT token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// IsAuthenticated returns true if a token is configured.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

// String masks the token so it never reaches logs.
func (p *StaticTokenProvider) String() string {
	return "StaticTokenProvider(" + domain.MaskToken(p.token) + ")"
}
