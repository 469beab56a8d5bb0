package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

// GitHub-specific errors.
var (
	// ErrConfigInvalidEndpoint indicates the endpoint is not an absolute http(s) URL.
	ErrConfigInvalidEndpoint = fmt.Errorf("%w: github: invalid endpoint", domain.ErrConfiguration)

	// ErrConfigInvalidMaxPages indicates a negative page bound.
	ErrConfigInvalidMaxPages = fmt.Errorf("%w: github: max pages must not be negative", domain.ErrConfiguration)

	// ErrConfigInvalidRate indicates a negative request rate.
	ErrConfigInvalidRate = fmt.Errorf("%w: github: requests per second must not be negative", domain.ErrConfiguration)
)

// statusCode extracts the HTTP status from a transport error, or 0.
func statusCode(err error) int {
	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}
	return 0
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	return statusCode(err) == http.StatusForbidden
}

// IsRateLimited checks if the error indicates primary or secondary rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	return statusCode(err) == http.StatusTooManyRequests
}
