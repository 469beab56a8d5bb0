package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent failures of a repository listing run.
// Every one of them is fatal for the run; none are retried.
var (
	// ErrConfiguration indicates missing or implausible configuration,
	// such as an absent or too short API token. Detected before any network call.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport indicates a network, HTTP status or decompression failure.
	ErrTransport = errors.New("transport error")

	// ErrMalformedResponse indicates a response body that is not JSON
	// or lacks the minimally expected structure.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRemoteQuery indicates the server reported a query-level error.
	ErrRemoteQuery = errors.New("remote query error")

	// ErrPaginationStalled indicates the server asked for another page
	// without handing out a new cursor.
	ErrPaginationStalled = fmt.Errorf("%w: pagination cursor did not advance", ErrMalformedResponse)

	// ErrPageLimitExceeded indicates the configured page bound was reached
	// while the server still reported more pages.
	ErrPageLimitExceeded = errors.New("page limit exceeded")

	// ErrAuthRequired indicates no API token is configured.
	ErrAuthRequired = fmt.Errorf("%w: authentication required", ErrConfiguration)
)

// MinTokenLength is the shortest credential accepted as plausible.
// GitHub tokens are 40 characters or longer.
const MinTokenLength = 40

// ValidateToken performs a sanity check on an API token.
// It is not real validation, only a guard against obviously wrong configuration.
func ValidateToken(token string) error {
	if token == "" {
		return ErrAuthRequired
	}
	if len(token) < MinTokenLength {
		return fmt.Errorf("%w: token must be at least %d characters, got %d",
			ErrConfiguration, MinTokenLength, len(token))
	}
	return nil
}

// TransportError represents a failed round trip to the API.
type TransportError struct {
	// Op names the step that failed, e.g. "send request".
	Op string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// RemoteQueryError carries the first error the server reported for a query.
type RemoteQueryError struct {
	// Message is the server's message, verbatim.
	Message string

	// Type is the server's error classification, e.g. "MISSING_PAGINATION_BOUNDARIES".
	Type string

	// Path locates the failing field in the query.
	Path []string
}

func (e *RemoteQueryError) Error() string {
	if e.Type != "" && len(e.Path) > 0 {
		return fmt.Sprintf("graphql: %s (%s at %s)", e.Message, e.Type, strings.Join(e.Path, "."))
	}
	return "graphql: " + e.Message
}

// Is reports whether target is ErrRemoteQuery.
func (e *RemoteQueryError) Is(target error) bool {
	return target == ErrRemoteQuery
}
