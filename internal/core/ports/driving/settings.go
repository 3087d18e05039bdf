package driving

import "github.com/custodia-labs/creatives-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then the config file,
	// then environment overrides.
	Get() (*domain.AppSettings, error)

	// Set parses and stores a single setting by its config key.
	Set(key, value string) error

	// Keys returns the supported config keys.
	Keys() []string

	// ConfigPath returns the location of the config file.
	ConfigPath() string
}
