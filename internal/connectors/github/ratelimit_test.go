package github

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("creates rate limiter with defaults", func(t *testing.T) {
		rl := NewRateLimiter(0)

		require.NotNil(t, rl)
		assert.Equal(t, GitHubRateLimit, rl.Limit())
		assert.Equal(t, GitHubRateLimit, rl.Remaining())
		assert.True(t, rl.ResetTime().IsZero())
		assert.False(t, rl.Low())
	})

	t.Run("updates from response headers", func(t *testing.T) {
		rl := NewRateLimiter(0)
		resetTime := time.Now().Add(1 * time.Hour).Unix()

		resp := &http.Response{
			Header: http.Header{
				"X-Ratelimit-Remaining": []string{"100"},
				"X-Ratelimit-Limit":     []string{"5000"},
				"X-Ratelimit-Reset":     []string{strconv.FormatInt(resetTime, 10)},
			},
		}

		rl.UpdateFromResponse(resp)

		assert.Equal(t, 100, rl.Remaining())
		assert.Equal(t, 5000, rl.Limit())
		assert.Equal(t, resetTime, rl.ResetTime().Unix())
		assert.False(t, rl.Low())
	})

	t.Run("reports low budget", func(t *testing.T) {
		rl := NewRateLimiter(0)

		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{"X-Ratelimit-Remaining": []string{"99"}},
		})

		assert.True(t, rl.Low())
	})

	t.Run("ignores missing and invalid headers", func(t *testing.T) {
		rl := NewRateLimiter(0)

		rl.UpdateFromResponse(nil)
		rl.UpdateFromResponse(&http.Response{
			Header: http.Header{
				"X-Ratelimit-Remaining": []string{"lots"},
				"X-Ratelimit-Reset":     []string{"soon"},
			},
		})

		assert.Equal(t, GitHubRateLimit, rl.Remaining())
		assert.True(t, rl.ResetTime().IsZero())
	})

	t.Run("unpaced wait returns immediately", func(t *testing.T) {
		rl := NewRateLimiter(0)

		for range 10 {
			require.NoError(t, rl.Wait(context.Background()))
		}
	})

	t.Run("wait respects context cancellation", func(t *testing.T) {
		rl := NewRateLimiter(0.001)
		require.NoError(t, rl.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := rl.Wait(ctx)

		assert.Error(t, err)
	})
}
