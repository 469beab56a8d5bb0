package github

import "strings"

// MaxPageSize is the largest page the API serves for a connection.
const MaxPageSize = 100

// repositoriesQuery selects the viewer's repositories one page at a time.
// The cursor travels as the $after variable, never spliced into the text.
var repositoriesQuery = compactQuery(`
query($first: Int!, $after: String) {
  viewer {
    repositories(first: $first, after: $after) {
      nodes {
        name
        url
        owner {
          url
          resourcePath
        }
      }
      pageInfo {
        endCursor
        hasNextPage
        hasPreviousPage
        startCursor
      }
    }
  }
}`)

// Query is a GraphQL document together with its variables.
type Query struct {
	Text      string
	Variables map[string]any
}

// graphQLRequest is the POST body accepted by the GraphQL endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// FirstPageQuery builds the query for the first page of repositories.
func FirstPageQuery(pageSize int) Query {
	return Query{
		Text: repositoriesQuery,
		Variables: map[string]any{
			"first": clampPageSize(pageSize),
		},
	}
}

// NextPageQuery builds the query for the page following cursor.
func NextPageQuery(pageSize int, cursor string) Query {
	return Query{
		Text: repositoriesQuery,
		Variables: map[string]any{
			"first": clampPageSize(pageSize),
			"after": cursor,
		},
	}
}

// Cursor returns the $after variable, if the query has one.
func (q Query) Cursor() (string, bool) {
	after, ok := q.Variables["after"].(string)
	return after, ok
}

// compactQuery collapses a query onto a single line.
func compactQuery(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func clampPageSize(n int) int {
	if n <= 0 || n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
