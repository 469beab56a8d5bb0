package github

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

func TestDecodeRepositoryPage_Data(t *testing.T) {
	t.Run("decodes nodes and page info", func(t *testing.T) {
		text := `{"data":{"viewer":{"repositories":{
			"nodes":[
				{"name":"a","url":"https://github.com/o/a","owner":{"url":"https://github.com/o","resourcePath":"/o"}},
				{"name":"b","url":"https://github.com/o/b","owner":{"url":"https://github.com/o","resourcePath":"/o"}}
			],
			"pageInfo":{"endCursor":"Y3Vyc29y","hasNextPage":true,"hasPreviousPage":false,"startCursor":"c3RhcnQ="}
		}}}}`

		page, err := DecodeRepositoryPage(text)

		require.NoError(t, err)
		require.Len(t, page.Repositories, 2)
		assert.Equal(t, "a", page.Repositories[0].GetName())
		assert.Equal(t, "https://github.com/o/b", page.Repositories[1].GetURL())
		assert.Equal(t, "/o", page.Repositories[0].GetOwner().GetResourcePath())
		assert.True(t, page.PageInfo.HasNextPage)
		assert.False(t, page.PageInfo.HasPreviousPage)
		assert.Equal(t, "Y3Vyc29y", page.PageInfo.GetEndCursor())
	})

	t.Run("preserves null fields", func(t *testing.T) {
		text := `{"data":{"viewer":{"repositories":{
			"nodes":[{"name":"a","url":null,"owner":null}],
			"pageInfo":{"endCursor":null,"hasNextPage":false}
		}}}}`

		page, err := DecodeRepositoryPage(text)

		require.NoError(t, err)
		require.Len(t, page.Repositories, 1)
		assert.Nil(t, page.Repositories[0].URL)
		assert.Nil(t, page.Repositories[0].Owner)
		assert.Nil(t, page.PageInfo.EndCursor)
	})

	t.Run("skips null nodes", func(t *testing.T) {
		text := `{"data":{"viewer":{"repositories":{
			"nodes":[null,{"name":"a"},null],
			"pageInfo":{"hasNextPage":false}
		}}}}`

		page, err := DecodeRepositoryPage(text)

		require.NoError(t, err)
		require.Len(t, page.Repositories, 1)
		assert.Equal(t, "a", page.Repositories[0].GetName())
	})

	t.Run("empty nodes is an empty final page", func(t *testing.T) {
		page, err := DecodeRepositoryPage(`{"data":{"viewer":{"repositories":{"nodes":[],"pageInfo":{"hasNextPage":false}}}}}`)

		require.NoError(t, err)
		assert.Empty(t, page.Repositories)
		assert.False(t, page.PageInfo.HasNextPage)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		page, err := DecodeRepositoryPage(`{"extensions":{"cost":1},"data":{"viewer":{"login":"x","repositories":{"totalCount":1,"nodes":[{"name":"a","isFork":false}],"pageInfo":{"hasNextPage":false}}}}}`)

		require.NoError(t, err)
		require.Len(t, page.Repositories, 1)
	})
}

func TestDecodeRepositoryPage_MissingPath(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty object", text: `{}`},
		{name: "null data", text: `{"data":null}`},
		{name: "missing viewer", text: `{"data":{}}`},
		{name: "null viewer", text: `{"data":{"viewer":null}}`},
		{name: "missing repositories", text: `{"data":{"viewer":{}}}`},
		{name: "empty errors list", text: `{"errors":[],"data":{"viewer":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := DecodeRepositoryPage(tt.text)

			require.NoError(t, err)
			assert.Empty(t, page.Repositories)
			assert.False(t, page.PageInfo.HasNextPage)
		})
	}
}

func TestDecodeRepositoryPage_RemoteErrors(t *testing.T) {
	t.Run("first error is reported", func(t *testing.T) {
		text := `{"errors":[
			{"type":"MISSING_PAGINATION_BOUNDARIES","path":["viewer","repositories"],"message":"You must provide a first or last value"},
			{"message":"second"}
		]}`

		page, err := DecodeRepositoryPage(text)

		require.Error(t, err)
		assert.Nil(t, page)
		assert.True(t, errors.Is(err, domain.ErrRemoteQuery))

		var remoteErr *domain.RemoteQueryError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "You must provide a first or last value", remoteErr.Message)
		assert.Equal(t, "MISSING_PAGINATION_BOUNDARIES", remoteErr.Type)
		assert.Equal(t, []string{"viewer", "repositories"}, remoteErr.Path)
	})

	t.Run("errors win over partial data", func(t *testing.T) {
		text := `{"data":{"viewer":{"repositories":{"nodes":[{"name":"a"}],"pageInfo":{"hasNextPage":false}}}},"errors":[{"message":"boom"}]}`

		page, err := DecodeRepositoryPage(text)

		assert.Nil(t, page)
		assert.True(t, errors.Is(err, domain.ErrRemoteQuery))
		assert.EqualError(t, err, "graphql: boom")
	})

	t.Run("numeric path elements are stringified", func(t *testing.T) {
		_, err := DecodeRepositoryPage(`{"errors":[{"type":"NOT_FOUND","message":"gone","path":["viewer","repositories","nodes",3]}]}`)

		var remoteErr *domain.RemoteQueryError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, []string{"viewer", "repositories", "nodes", "3"}, remoteErr.Path)
	})
}

func TestDecodeRepositoryPage_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty body", text: ``},
		{name: "not json", text: `<html>Bad Gateway</html>`},
		{name: "truncated json", text: `{"data":{"viewer":`},
		{name: "json null", text: `null`},
		{name: "json array", text: `[1,2,3]`},
		{name: "json string", text: `"data"`},
		{name: "errors not a list", text: `{"errors":"boom"}`},
		{name: "data not an object", text: `{"data":[]}`},
		{name: "nodes not a list", text: `{"data":{"viewer":{"repositories":{"nodes":{"name":"a"}}}}}`},
		{name: "name not a string", text: `{"data":{"viewer":{"repositories":{"nodes":[{"name":42}]}}}}`},
		{name: "hasNextPage not a bool", text: `{"data":{"viewer":{"repositories":{"nodes":[],"pageInfo":{"hasNextPage":"yes"}}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := DecodeRepositoryPage(tt.text)

			require.Error(t, err)
			assert.Nil(t, page)
			assert.True(t, errors.Is(err, domain.ErrMalformedResponse), "got %v", err)
			assert.False(t, errors.Is(err, domain.ErrRemoteQuery))
		})
	}
}
