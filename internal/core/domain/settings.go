package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default setting values.
const (
	DefaultPageSize       = 10
	DefaultTimeoutSeconds = 30
	DefaultMetricsAddress = "127.0.0.1:9464"
)

// AppSettings holds the complete application configuration.
type AppSettings struct {
	API     APISettings
	Metrics MetricsSettings
}

// APISettings configures access to the remote creatives service.
type APISettings struct {
	// BaseURL is the API root. Empty means no remote source is configured.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// PageSize is the number of creatives requested per page.
	PageSize int

	// RateLimit caps requests per second. Zero disables throttling.
	RateLimit float64

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int
}

// Timeout returns the request timeout as a duration.
func (s APISettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// IsConfigured returns true if a base URL is set.
func (s APISettings) IsConfigured() bool {
	return s.BaseURL != ""
}

// Validate checks the API settings.
func (s APISettings) Validate() error {
	if s.BaseURL != "" {
		u, err := url.Parse(s.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api.base_url %q: %w", s.BaseURL, ErrInvalidInput)
		}
	}
	if s.PageSize <= 0 {
		return fmt.Errorf("api.page_size %d: %w", s.PageSize, ErrInvalidInput)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit %v: %w", s.RateLimit, ErrInvalidInput)
	}
	if s.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds %d: %w", s.TimeoutSeconds, ErrInvalidInput)
	}
	return nil
}

// MetricsSettings configures the Prometheus endpoint.
type MetricsSettings struct {
	Enabled bool
	Address string
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			PageSize:       DefaultPageSize,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Metrics: MetricsSettings{
			Address: DefaultMetricsAddress,
		},
	}
}
