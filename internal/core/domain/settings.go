package domain

import "time"

// Default settings values.
const (
	// DefaultEndpoint is the public GitHub GraphQL endpoint.
	DefaultEndpoint = "https://api.github.com/graphql"

	// DefaultPageSize is the API's per-request maximum for connections.
	DefaultPageSize = 100

	// DefaultTimeout bounds a single request round trip.
	DefaultTimeout = 30 * time.Second
)

// Settings holds the configuration of a single listing run.
// It is resolved once at start-up and treated as read-only afterwards.
type Settings struct {
	// Token is the API credential sent as a bearer token.
	Token string

	// OwnerFilter optionally restricts output to one owner's repositories.
	OwnerFilter string

	// Endpoint is the GraphQL endpoint URL.
	Endpoint string

	// UserAgent identifies the client. The API rejects requests without one.
	// Empty means the connector's default.
	UserAgent string

	// PageSize is the number of repositories requested per page (1-100).
	PageSize int

	// MaxPages bounds the number of pages fetched. Zero means unbounded.
	MaxPages int

	// RequestsPerSecond paces requests. Zero means unthrottled.
	RequestsPerSecond float64

	// Timeout bounds each request.
	Timeout time.Duration
}

// DefaultSettings returns settings with defaults applied and no credentials.
func DefaultSettings() Settings {
	return Settings{
		Endpoint: DefaultEndpoint,
		PageSize: DefaultPageSize,
		Timeout:  DefaultTimeout,
	}
}

// HasToken reports whether a token is configured at all.
func (s *Settings) HasToken() bool {
	return s.Token != ""
}

// MaskToken hides all but the first and last four characters of a token.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
