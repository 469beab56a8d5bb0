// Package github implements a repository source for GitHub.
//
// The connector lists every repository visible to the authenticated user
// through the GraphQL API's viewer.repositories connection.
//
// # Architecture
//
// The connector follows the driven port pattern defined in
// [driven.RepositorySource]. It comprises the following components:
//
//   - Connector: entry point, wires the pieces below together
//   - Client: sends queries over HTTP with bearer authentication
//   - DecodeRepositoryPage: turns a response envelope into a page or an error
//   - Paginator: follows end cursors until the server reports no next page
//   - Config: parses and validates connector configuration
//
// # Authentication
//
// A personal access token (classic or fine-grained) is sent as a bearer
// token. Tokens shorter than 40 characters are rejected before any request
// is made. The token needs no scopes to list public repositories and the
// 'repo' scope to include private ones.
//
// # Pagination
//
// GitHub serves at most 100 nodes per connection request. The first query
// omits the cursor; every following query passes the previous page's
// endCursor as the $after variable. The loop ends when hasNextPage is false.
// A page that reports hasNextPage with a missing or already seen cursor
// aborts the listing with [domain.ErrPaginationStalled].
//
// # Compression
//
// Requests advertise Accept-Encoding: gzip. Responses declaring gzip in
// Content-Encoding are inflated while streaming.
//
// # Error Handling
//
// Every failure aborts the listing; nothing is retried:
//
//   - Missing or short token: [domain.ErrConfiguration]
//   - Network failure, non-2xx status, bad gzip: *[domain.TransportError]
//   - Body is not a JSON object: [domain.ErrMalformedResponse]
//   - Top-level "errors" list: *[domain.RemoteQueryError] with the first message
//
// # Example Usage
//
//	cfg, _ := github.ParseConfig(settings)
//	connector := github.New(cfg, tokenProvider)
//
//	repos, err := connector.ListRepositories(ctx)
//	if err != nil {
//	    return err
//	}
package github
