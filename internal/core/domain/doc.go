// Package domain defines the core business entities for repolist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Repository: A repository visible to the authenticated user
//   - Owner: The user or organisation a repository belongs to
//   - PageInfo: Cursor state reported with each page of results
//   - RepositoryPage: One decoded page of repositories
//   - Settings: Run configuration resolved from file, environment and flags
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
