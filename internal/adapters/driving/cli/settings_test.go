package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "tok-1234567890abcdef",
			expected: "tok-...cdef",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.input))
		})
	}
}

func TestReadSecretFromStdin_NonTerminal(t *testing.T) {
	assert.Equal(t, "s3cret", readSecretFromStdin(strings.NewReader("  s3cret \nignored\n")))
	assert.Empty(t, readSecretFromStdin(strings.NewReader("")))
}

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "path"}, names)
	assert.Contains(t, configCmd.Aliases, "settings")
}

func TestConfigShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Base URL: (not set)")
	assert.Contains(t, out, "Token: (not set)")
	assert.Contains(t, out, "Page size: 10")
	assert.Contains(t, out, "Rate limit: off")
	assert.Contains(t, out, "Timeout: 30s")
	assert.Contains(t, out, "Enabled: no")
	assert.Contains(t, out, "No API configured.")
}

func TestConfigShow_IsDefaultAction(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestConfigSet_ThenShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config", "set", "api.base_url", "https://api.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Set api.base_url to https://api.example.com")

	_, err = execute("config", "set", "api.page_size", "25")
	require.NoError(t, err)
	_, err = execute("config", "set", "api.rate_limit", "2.5")
	require.NoError(t, err)
	_, err = execute("settings", "set", "metrics.enabled", "true")
	require.NoError(t, err)

	out, err = execute("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Base URL: https://api.example.com")
	assert.Contains(t, out, "Page size: 25")
	assert.Contains(t, out, "Rate limit: 2.5 req/s")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestConfigSet_TokenIsMasked(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config", "set", "api.token", "tok-1234567890abcdef")
	require.NoError(t, err)
	assert.Contains(t, out, "tok-...cdef")
	assert.NotContains(t, out, "1234567890")

	out, err = execute("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Token: tok-...cdef")
}

func TestConfigSet_TokenPrompt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	readSecret = func(_ io.Reader) string { return "prompted-token-value" }

	out, err := execute("config", "set", "api.token")
	require.NoError(t, err)
	assert.Contains(t, out, "Token: ")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "prompted-token-value", settings.API.Token)
}

func TestConfigSet_MissingValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("config", "set", "api.page_size")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value for api.page_size")
}

func TestConfigSet_InvalidInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("config", "set", "nope.key", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid keys")
	assert.Contains(t, err.Error(), "api.base_url")

	_, err = execute("config", "set", "api.page_size", "zero")
	assert.Error(t, err)
}

func TestConfigSet_NoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("config", "set")
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config", "path")
	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfig_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	for _, args := range [][]string{{"config", "show"}, {"config", "set", "a", "b"}, {"config", "path"}} {
		_, err := execute(args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "settings service not configured")
		resetFlags(rootCmd)
	}
}
