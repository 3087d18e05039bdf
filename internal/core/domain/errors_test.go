package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMalformedMetrics", ErrMalformedMetrics},
		{"ErrFetchConsumed", ErrFetchConsumed},
		{"ErrSourceUnavailable", ErrSourceUnavailable},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

// TestErrMalformedMetrics_Wrapped tests that wrapped metrics errors stay matchable
func TestErrMalformedMetrics_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("creative c-1: %w", ErrMalformedMetrics)

	assert.True(t, errors.Is(wrapped, ErrMalformedMetrics))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Contains(t, wrapped.Error(), "malformed metrics")
}

// TestErrors_Distinct tests that no two domain errors match each other
func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrMalformedMetrics,
		ErrFetchConsumed, ErrSourceUnavailable, ErrRateLimited,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
