package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driven"
	"github.com/custodia-labs/repolist/internal/logger"
)

// Client sends GraphQL queries to the GitHub API.
type Client struct {
	httpClient    *http.Client
	config        *Config
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a new GitHub GraphQL client with a token provider.
func NewClient(cfg *Config, tokenProvider driven.TokenProvider) *Client {
	return &Client{
		config:        cfg,
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// ensureClient initializes the authenticated http.Client if not already done.
// The token is checked here so a bad configuration never reaches the network.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.httpClient != nil {
		return nil
	}

	if c.tokenProvider == nil {
		return domain.ErrAuthRequired
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if err := domain.ValidateToken(token); err != nil {
		return err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "Bearer"},
	)
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   c.config.Transport,
		},
		Timeout: c.config.Timeout,
	}

	return nil
}

// Send posts q to the GraphQL endpoint and returns the response body as text.
// Gzip-encoded bodies are inflated. Any non-2xx status is a *domain.TransportError.
func (c *Client) Send(ctx context.Context, q Query) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(graphQLRequest{Query: q.Text, Variables: q.Variables})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &domain.TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	// Setting this explicitly turns off net/http's transparent decompression,
	// so Content-Encoding is visible below.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	c.updateRateLimitFromResponse(resp)

	body, err := decodeBody(resp)
	if err != nil {
		return "", &domain.TransportError{Op: "decompress response", StatusCode: resp.StatusCode, Err: err}
	}
	defer body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(resp, body)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &domain.TransportError{Op: "read response", Err: err}
	}

	logger.Debug("Received %d bytes (encoding=%q)", len(data), resp.Header.Get("Content-Encoding"))
	return string(data), nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// TokenProvider returns the token provider.
func (c *Client) TokenProvider() driven.TokenProvider {
	return c.tokenProvider
}

// updateRateLimitFromResponse records the budget and warns when it runs low.
func (c *Client) updateRateLimitFromResponse(resp *http.Response) {
	c.rateLimiter.UpdateFromResponse(resp)
	logger.Debug("Rate limit: %d/%d remaining", c.rateLimiter.Remaining(), c.rateLimiter.Limit())
	if c.rateLimiter.Low() {
		logger.Warn("GitHub rate limit nearly exhausted: %d remaining, resets at %s",
			c.rateLimiter.Remaining(), c.rateLimiter.ResetTime().Format("15:04:05"))
	}
}

// statusError converts a non-2xx response into a *domain.TransportError.
// go-github understands GitHub's error bodies and rate limit responses.
func (c *Client) statusError(resp *http.Response, body io.Reader) error {
	inflated := *resp
	inflated.Body = io.NopCloser(body)

	cause := gh.CheckResponse(&inflated)
	if cause == nil {
		cause = fmt.Errorf("unexpected status %s", resp.Status)
	}
	if IsRateLimited(cause) {
		logger.Warn("GitHub rate limit exceeded")
	}

	return &domain.TransportError{
		Op:         "check response",
		StatusCode: resp.StatusCode,
		Err:        cause,
	}
}

// decodeBody returns a reader over the response body, inflating gzip.
// The caller closes both the returned reader and resp.Body.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	if !isGzipEncoded(resp.Header) {
		return io.NopCloser(resp.Body), nil
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, err
	}
	return zr, nil
}

// isGzipEncoded reports whether Content-Encoding declares gzip.
func isGzipEncoded(h http.Header) bool {
	for _, value := range h.Values("Content-Encoding") {
		for _, coding := range strings.Split(value, ",") {
			if strings.EqualFold(strings.TrimSpace(coding), "gzip") {
				return true
			}
		}
	}
	return false
}
