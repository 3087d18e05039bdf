package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and change the settings stored in the config file.

Settings can be overridden per run with --base-url and --page-size, and the
base URL and token with the CREATIVES_API_BASE_URL and CREATIVES_API_TOKEN
environment variables.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Set a setting",
	Long: `Set a setting and save it to the config file.

Keys:
  api.base_url         creatives API root, e.g. https://api.example.com
  api.token            bearer token (prompted for when VALUE is omitted)
  api.page_size        creatives requested per page
  api.rate_limit       requests per second, 0 disables throttling
  api.timeout_seconds  per-request timeout
  metrics.enabled      serve Prometheus metrics from the dashboard
  metrics.address      metrics listen address`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

// readSecret reads a secret from stdin. Tests replace it.
var readSecret = readSecretFromStdin

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	if settings.API.IsConfigured() {
		cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	} else {
		cmd.Printf("  Base URL: (not set)\n")
	}
	if settings.API.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.API.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Printf("  Page size: %d\n", settings.API.PageSize)
	if settings.API.RateLimit > 0 {
		cmd.Printf("  Rate limit: %g req/s\n", settings.API.RateLimit)
	} else {
		cmd.Printf("  Rate limit: off\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout())
	cmd.Println()

	cmd.Println("[Metrics]")
	if settings.Metrics.Enabled {
		cmd.Printf("  Enabled: yes\n")
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Printf("  Address: %s\n", settings.Metrics.Address)
	cmd.Println()

	if !settings.API.IsConfigured() {
		cmd.Println("No API configured. Run 'creatives config set api.base_url URL' or use --demo.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == "api.token":
		cmd.Print("Token: ")
		value = readSecret(cmd.InOrStdin())
		cmd.Println()
	default:
		return fmt.Errorf("missing value for %s", key)
	}

	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if key == "api.token" {
		cmd.Printf("Set %s to %s\n", key, maskAPIKey(value))
	} else {
		cmd.Printf("Set %s to %s\n", key, value)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.ConfigPath())
	return nil
}

// readSecretFromStdin reads without echo when r is a terminal.
func readSecretFromStdin(r io.Reader) string {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(r)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
