package creativesapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThrottle_Disabled(t *testing.T) {
	assert.False(t, NewThrottle(0).Enabled())
	assert.False(t, NewThrottle(-1).Enabled())
	assert.NoError(t, NewThrottle(0).Wait(context.Background()))

	var nilThrottle *Throttle
	assert.NoError(t, nilThrottle.Wait(context.Background()))
}

func TestNewThrottle_Enabled(t *testing.T) {
	th := NewThrottle(100)

	assert.True(t, th.Enabled())
	assert.NoError(t, th.Wait(context.Background()))
}

func TestCheckRateLimit(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("nil response", func(t *testing.T) {
		assert.NoError(t, CheckRateLimit(nil, now))
	})

	t.Run("ok response", func(t *testing.T) {
		assert.NoError(t, CheckRateLimit(&http.Response{StatusCode: http.StatusOK}, now))
	})

	t.Run("retry after header", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
		resp.Header.Set(HeaderRetryAfter, "12")

		err := CheckRateLimit(resp, now)

		var rl *RateLimitError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, now.Add(12*time.Second), rl.ResetAt)
	})

	t.Run("default retry after", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}

		err := CheckRateLimit(resp, now)

		var rl *RateLimitError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, now.Add(DefaultRetryAfter), rl.ResetAt)
		assert.Contains(t, rl.Error(), "2026-01-02T03:04:35Z")
	})
}
