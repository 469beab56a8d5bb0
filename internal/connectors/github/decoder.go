package github

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

// graphQLError is one entry of a response's top-level "errors" list.
type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

// repositoriesData mirrors data.viewer.repositories.
// Every level is a pointer so an absent or null node is distinguishable.
type repositoriesData struct {
	Viewer *struct {
		Repositories *struct {
			Nodes    []*domain.Repository `json:"nodes"`
			PageInfo *domain.PageInfo     `json:"pageInfo"`
		} `json:"repositories"`
	} `json:"viewer"`
}

// DecodeRepositoryPage parses a GraphQL response envelope into a page.
//
// The envelope carries either an error list or a data payload. Errors are
// checked first: a non-empty "errors" list yields a *domain.RemoteQueryError
// with the first message, even when partial data is present. A missing
// data.viewer.repositories path yields an empty final page.
func DecodeRepositoryPage(text string) (*domain.RepositoryPage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("%w: response body is null", domain.ErrMalformedResponse)
	}

	if raw, ok := envelope["errors"]; ok {
		var errs []graphQLError
		if err := json.Unmarshal(raw, &errs); err != nil {
			return nil, fmt.Errorf("%w: decode errors: %w", domain.ErrMalformedResponse, err)
		}
		if len(errs) > 0 {
			return nil, errs[0].toDomain()
		}
	}

	var data repositoriesData
	if raw, ok := envelope["data"]; ok {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("%w: decode data: %w", domain.ErrMalformedResponse, err)
		}
	}

	page := &domain.RepositoryPage{}
	if data.Viewer == nil || data.Viewer.Repositories == nil {
		return page, nil
	}

	conn := data.Viewer.Repositories
	page.Repositories = make([]domain.Repository, 0, len(conn.Nodes))
	for _, node := range conn.Nodes {
		if node == nil {
			continue
		}
		page.Repositories = append(page.Repositories, *node)
	}
	if conn.PageInfo != nil {
		page.PageInfo = *conn.PageInfo
	}

	return page, nil
}

func (e graphQLError) toDomain() *domain.RemoteQueryError {
	path := make([]string, 0, len(e.Path))
	for _, p := range e.Path {
		path = append(path, fmt.Sprint(p))
	}
	return &domain.RemoteQueryError{
		Message: e.Message,
		Type:    e.Type,
		Path:    path,
	}
}
