package creativesapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// DefaultRetryAfter is assumed when a 429 carries no usable Retry-After.
const DefaultRetryAfter = 30 * time.Second

// Throttle spaces out requests to the creatives API.
// A zero or negative rate disables throttling.
type Throttle struct {
	bucket *rate.Limiter
}

// NewThrottle creates a throttle allowing perSecond requests per second.
func NewThrottle(perSecond float64) *Throttle {
	if perSecond <= 0 {
		return &Throttle{}
	}
	return &Throttle{bucket: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until a request may be sent.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.bucket == nil {
		return nil
	}
	return t.bucket.Wait(ctx)
}

// Enabled reports whether requests are throttled.
func (t *Throttle) Enabled() bool {
	return t != nil && t.bucket != nil
}

// CheckRateLimit returns a RateLimitError for a 429 response, nil otherwise.
func CheckRateLimit(resp *http.Response, now time.Time) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	resetAt := now.Add(DefaultRetryAfter)
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			resetAt = now.Add(time.Duration(seconds) * time.Second)
		}
	}
	return &RateLimitError{ResetAt: resetAt}
}
