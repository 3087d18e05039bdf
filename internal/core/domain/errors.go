package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedMetrics indicates a creative's metrics payload could not be decoded.
	// Unlike metadata and labels, metrics decoding does not recover.
	ErrMalformedMetrics = errors.New("malformed metrics")

	// ErrFetchConsumed indicates a pending fetch was already run.
	ErrFetchConsumed = errors.New("fetch already run")

	// Remote Source Errors.

	// ErrSourceUnavailable indicates the remote creative service is not configured.
	ErrSourceUnavailable = errors.New("creative source unavailable")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
