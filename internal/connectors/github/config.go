package github

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

// DefaultUserAgent identifies requests when no user agent is configured.
// GitHub rejects API requests without a User-Agent header.
const DefaultUserAgent = "repolist"

// Config holds the parsed configuration for the GitHub connector.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string

	// UserAgent is sent with every request. Never empty after ParseConfig.
	UserAgent string

	// PageSize is the number of repositories per request (1-100).
	PageSize int

	// MaxPages bounds the pages fetched in one listing. Zero is unbounded.
	MaxPages int

	// RequestsPerSecond paces requests. Zero disables pacing.
	RequestsPerSecond float64

	// Timeout bounds each request.
	Timeout time.Duration

	// Transport is the base round tripper beneath authentication.
	// Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// ParseConfig builds a connector Config from resolved settings.
// Out-of-range page sizes are clamped; other invalid values are rejected.
func ParseConfig(settings domain.Settings) (*Config, error) {
	cfg := &Config{
		Endpoint:          settings.Endpoint,
		UserAgent:         settings.UserAgent,
		PageSize:          clampPageSize(settings.PageSize),
		MaxPages:          settings.MaxPages,
		RequestsPerSecond: settings.RequestsPerSecond,
		Timeout:           settings.Timeout,
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = domain.DefaultEndpoint
	}
	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return nil, err
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if cfg.MaxPages < 0 {
		return nil, fmt.Errorf("%w: %d", ErrConfigInvalidMaxPages, cfg.MaxPages)
	}
	if cfg.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("%w: %g", ErrConfigInvalidRate, cfg.RequestsPerSecond)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultTimeout
	}

	return cfg, nil
}

// validateEndpoint requires an absolute http or https URL.
func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalidEndpoint, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrConfigInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrConfigInvalidEndpoint)
	}
	return nil
}
