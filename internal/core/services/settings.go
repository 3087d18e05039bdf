package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIBaseURL     = "api.base_url"
	KeyAPIToken       = "api.token"
	KeyAPIPageSize    = "api.page_size"
	KeyAPIRateLimit   = "api.rate_limit"
	KeyAPITimeout     = "api.timeout_seconds"
	KeyMetricsEnabled = "metrics.enabled"
	KeyMetricsAddress = "metrics.address"
)

// EnvAPIBaseURL overrides api.base_url when set.
const EnvAPIBaseURL = "CREATIVES_API_BASE_URL"

// EnvAPIToken overrides api.token when set.
//
//nolint:gosec // G101: environment variable name, not a credential.
const EnvAPIToken = "CREATIVES_API_TOKEN"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	if s.configStore != nil {
		if v := s.configStore.GetString(KeyAPIBaseURL); v != "" {
			settings.API.BaseURL = v
		}
		settings.API.Token = s.configStore.GetString(KeyAPIToken)
		if v := s.configStore.GetInt(KeyAPIPageSize); v > 0 {
			settings.API.PageSize = v
		}
		settings.API.RateLimit = s.configStore.GetFloat(KeyAPIRateLimit)
		if v := s.configStore.GetInt(KeyAPITimeout); v > 0 {
			settings.API.TimeoutSeconds = v
		}
		settings.Metrics.Enabled = s.configStore.GetBool(KeyMetricsEnabled)
		if v := s.configStore.GetString(KeyMetricsAddress); v != "" {
			settings.Metrics.Address = v
		}
	}

	if v := s.getenv(EnvAPIBaseURL); v != "" {
		settings.API.BaseURL = v
	}
	if v := s.getenv(EnvAPIToken); v != "" {
		settings.API.Token = v
	}

	if err := settings.API.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &settings, nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("config store not configured: %w", domain.ErrSourceUnavailable)
	}

	value = strings.TrimSpace(value)
	var parsed any
	switch key {
	case KeyAPIBaseURL, KeyAPIToken, KeyMetricsAddress:
		parsed = value
	case KeyAPIPageSize, KeyAPITimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = int64(n)
	case KeyAPIRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative number: %w", key, domain.ErrInvalidInput)
		}
		parsed = f
	case KeyMetricsEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	return s.configStore.Set(key, parsed)
}

// Keys returns the supported config keys.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyAPIBaseURL,
		KeyAPIToken,
		KeyAPIPageSize,
		KeyAPIRateLimit,
		KeyAPITimeout,
		KeyMetricsEnabled,
		KeyMetricsAddress,
	}
}

// ConfigPath returns the location of the config file.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
