package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "set-token [token]", configSetTokenCmd.Use)
	assert.Equal(t, "set-owner [owner]", configSetOwnerCmd.Use)
	assert.Equal(t, "clear-owner", configClearOwnerCmd.Use)
}

func TestConfigShowCmd(t *testing.T) {
	t.Run("masks token", func(t *testing.T) {
		_, cleanup := setupTestServices(map[string]any{
			"github.token":        testToken,
			"github.owner_filter": "/octocat",
			"github.max_pages":    5,
		}, nil)
		defer cleanup()

		out, err := execute(t, "config", "show")

		require.NoError(t, err)
		assert.Contains(t, out, "Current Settings")
		assert.Contains(t, out, "Token: ghp_...aaaa")
		assert.NotContains(t, out, testToken)
		assert.Contains(t, out, "Owner filter: /octocat")
		assert.Contains(t, out, "Endpoint: "+domain.DefaultEndpoint)
		assert.Contains(t, out, "Max pages: 5")
		assert.Contains(t, out, "Requests per second: unlimited")
		assert.Contains(t, out, "Config file: (in memory)")
	})

	t.Run("defaults", func(t *testing.T) {
		_, cleanup := setupTestServices(nil, nil)
		defer cleanup()

		out, err := execute(t, "config")

		require.NoError(t, err)
		assert.Contains(t, out, "Token: (not set)")
		assert.Contains(t, out, "Owner filter: (none)")
		assert.Contains(t, out, "Page size: 100")
		assert.Contains(t, out, "Max pages: unbounded")
		assert.Contains(t, out, "Timeout: 30s")
	})
}

func TestConfigSetTokenCmd(t *testing.T) {
	t.Run("from argument", func(t *testing.T) {
		store, cleanup := setupTestServices(nil, nil)
		defer cleanup()

		out, err := execute(t, "config", "set-token", testToken)

		require.NoError(t, err)
		assert.Equal(t, testToken, store.GetString("github.token"))
		assert.Contains(t, out, "Token saved (ghp_...aaaa)")
		assert.NotContains(t, out, testToken)
	})

	t.Run("from stdin", func(t *testing.T) {
		store, cleanup := setupTestServices(nil, nil)
		defer cleanup()
		rootCmd.SetIn(strings.NewReader(testToken + "\n"))

		_, err := execute(t, "config", "set-token")

		require.NoError(t, err)
		assert.Equal(t, testToken, store.GetString("github.token"))
	})

	t.Run("rejects short token", func(t *testing.T) {
		store, cleanup := setupTestServices(nil, nil)
		defer cleanup()

		_, err := execute(t, "config", "set-token", "ghp_short")

		assert.True(t, errors.Is(err, domain.ErrConfiguration))
		_, ok := store.Get("github.token")
		assert.False(t, ok)
	})

	t.Run("rejects too many arguments", func(t *testing.T) {
		_, cleanup := setupTestServices(nil, nil)
		defer cleanup()

		_, err := execute(t, "config", "set-token", "a", "b")

		assert.Error(t, err)
	})
}

func TestConfigOwnerCmds(t *testing.T) {
	store, cleanup := setupTestServices(nil, nil)
	defer cleanup()

	out, err := execute(t, "config", "set-owner", "octocat")
	require.NoError(t, err)
	assert.Contains(t, out, "Owner filter set to /octocat")
	assert.Equal(t, "/octocat", store.GetString("github.owner_filter"))

	out, err = execute(t, "config", "clear-owner")
	require.NoError(t, err)
	assert.Contains(t, out, "Owner filter cleared")
	_, ok := store.Get("github.owner_filter")
	assert.False(t, ok)

	_, err = execute(t, "config", "set-owner")
	assert.Error(t, err)
}

func TestReadPassword_NonTerminal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "line", input: "secret\n", want: "secret"},
		{name: "no newline", input: "secret", want: "secret"},
		{name: "padded", input: "  secret \r\n", want: "secret"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readPassword(bytes.NewBufferString(tt.input)))
		})
	}
}
