package github

import (
	"context"
	"fmt"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/logger"
)

// Transport sends a query and returns the raw response text.
// Client is the production implementation.
type Transport interface {
	Send(ctx context.Context, q Query) (string, error)
}

// Ensure Client implements Transport.
var _ Transport = (*Client)(nil)

// Paginator walks the viewer's repository connection page by page.
type Paginator struct {
	transport Transport
	pageSize  int
	maxPages  int
}

// NewPaginator creates a paginator. A maxPages of zero means unbounded.
func NewPaginator(transport Transport, pageSize, maxPages int) *Paginator {
	return &Paginator{
		transport: transport,
		pageSize:  clampPageSize(pageSize),
		maxPages:  maxPages,
	}
}

// FetchAll returns every repository across all pages in arrival order.
//
// Pages are fetched strictly in sequence since each query needs the
// previous page's end cursor. Errors from the transport or the decoder are
// returned unchanged and nothing fetched so far is returned with them.
// A page that asks for more without a fresh cursor fails with
// domain.ErrPaginationStalled rather than looping forever.
func (p *Paginator) FetchAll(ctx context.Context) ([]domain.Repository, error) {
	logger.Section("Repository Pagination")

	var all []domain.Repository
	seen := make(map[string]struct{})
	query := FirstPageQuery(p.pageSize)

	for pageNum := 1; ; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := p.transport.Send(ctx, query)
		if err != nil {
			return nil, err
		}

		page, err := DecodeRepositoryPage(text)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Repositories...)
		logger.WithFields(map[string]any{
			"page":        pageNum,
			"items":       len(page.Repositories),
			"total":       len(all),
			"hasNextPage": page.PageInfo.HasNextPage,
		}, "page decoded")

		if !page.PageInfo.HasNextPage {
			return all, nil
		}

		cursor := page.PageInfo.GetEndCursor()
		if cursor == "" {
			return nil, fmt.Errorf("%w: page %d has no end cursor", domain.ErrPaginationStalled, pageNum)
		}
		if _, dup := seen[cursor]; dup {
			return nil, fmt.Errorf("%w: cursor %q repeated on page %d", domain.ErrPaginationStalled, cursor, pageNum)
		}
		seen[cursor] = struct{}{}

		if p.maxPages > 0 && pageNum >= p.maxPages {
			return nil, fmt.Errorf("%w: more pages remain after %d", domain.ErrPageLimitExceeded, pageNum)
		}

		query = NextPageQuery(p.pageSize, cursor)
	}
}
