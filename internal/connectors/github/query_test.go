package github

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoriesQuery(t *testing.T) {
	assert.NotContains(t, repositoriesQuery, "\n")
	assert.NotContains(t, repositoriesQuery, "  ")
	assert.True(t, strings.HasPrefix(repositoriesQuery, "query($first: Int!, $after: String) {"))

	for _, field := range []string{
		"viewer", "repositories(first: $first, after: $after)",
		"nodes", "name", "url", "owner", "resourcePath",
		"pageInfo", "endCursor", "hasNextPage", "hasPreviousPage", "startCursor",
	} {
		assert.Contains(t, repositoriesQuery, field)
	}
}

func TestFirstPageQuery(t *testing.T) {
	q := FirstPageQuery(50)

	assert.Equal(t, repositoriesQuery, q.Text)
	assert.Equal(t, map[string]any{"first": 50}, q.Variables)

	_, ok := q.Cursor()
	assert.False(t, ok)
}

func TestNextPageQuery(t *testing.T) {
	q := NextPageQuery(0, "Y3Vyc29yOnYyOpHOAAAAAQ==")

	assert.Equal(t, repositoriesQuery, q.Text)
	assert.Equal(t, MaxPageSize, q.Variables["first"])

	cursor, ok := q.Cursor()
	require.True(t, ok)
	assert.Equal(t, "Y3Vyc29yOnYyOpHOAAAAAQ==", cursor)
}

func TestGraphQLRequest_JSON(t *testing.T) {
	t.Run("first page omits after", func(t *testing.T) {
		q := FirstPageQuery(10)
		body, err := json.Marshal(graphQLRequest{Query: q.Text, Variables: q.Variables})

		require.NoError(t, err)
		assert.Contains(t, string(body), `"variables":{"first":10}`)
		assert.NotContains(t, string(body), "after\":")
	})

	t.Run("cursor is escaped", func(t *testing.T) {
		q := NextPageQuery(10, `a"b\c`)
		body, err := json.Marshal(graphQLRequest{Query: q.Text, Variables: q.Variables})

		require.NoError(t, err)
		assert.Contains(t, string(body), `"after":"a\"b\\c"`)
	})

	t.Run("no variables", func(t *testing.T) {
		body, err := json.Marshal(graphQLRequest{Query: "{ viewer { login } }"})

		require.NoError(t, err)
		assert.Equal(t, `{"query":"{ viewer { login } }"}`, string(body))
	})
}

func TestCompactQuery(t *testing.T) {
	assert.Equal(t, "query { viewer { login } }", compactQuery("\nquery {\n\tviewer {\n    login\n  }\n}\n"))
	assert.Equal(t, "", compactQuery(" \n\t "))
}
