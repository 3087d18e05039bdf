package creativesapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// ErrMissingBaseURL indicates the client was created without an API base URL.
var ErrMissingBaseURL = errors.New("creativesapi: base URL is required")

// ErrMalformedResponse indicates the response body could not be decoded.
var ErrMalformedResponse = errors.New("creativesapi: malformed response")

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("creativesapi: rate limit exceeded, retry after %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap lets errors.Is match domain.ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a non-success response from the creatives API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("creativesapi: API error %d: %s (URL: %s, request %s)",
		e.StatusCode, e.Message, e.URL, e.RequestID)
}

// IsNotFound checks if the error indicates the collection endpoint was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
