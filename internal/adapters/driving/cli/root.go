// Package cli provides the cobra command tree for the creatives binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
	"github.com/custodia-labs/creatives-cli/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// DashboardOptions holds what a DashboardFactory needs to build a dashboard.
type DashboardOptions struct {
	// Settings are the effective settings after flag overrides.
	Settings domain.AppSettings

	// Demo selects the built-in offline collection instead of the remote API.
	Demo bool

	// Observer receives fetch and decode telemetry. Nil means no telemetry.
	Observer driven.Observer
}

// DashboardFactory builds a fresh dashboard session.
type DashboardFactory func(ctx context.Context, opts DashboardOptions) (driving.DashboardService, error)

// SettingsLoader opens the settings stored under configDir.
// An empty configDir selects the default location.
type SettingsLoader func(configDir string) (driving.SettingsService, error)

var (
	settingsLoader   SettingsLoader
	settingsService  driving.SettingsService
	dashboardFactory DashboardFactory
)

// Persistent flag values.
var (
	verbose     bool
	configDir   string
	baseURLFlag string
	pageSize    int
	demo        bool
)

var rootCmd = &cobra.Command{
	Use:   "creatives",
	Short: "Browse and filter creatives from the terminal",
	Long: `creatives pages through a remote creatives collection and lets you
filter what has been loaded by label.

Creatives are fetched a page at a time. Labels are collected from every
loaded creative and a creative is shown when it carries any selected label.

Run 'creatives tui' for the interactive dashboard, or 'creatives list' for
scriptable output. Use --demo to try it without a server.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.creatives)")
	flags.StringVar(&baseURLFlag, "base-url", "", "creatives API base URL (overrides config)")
	flags.IntVar(&pageSize, "page-size", 0, "creatives requested per page (overrides config)")
	flags.BoolVar(&demo, "demo", false, "use the built-in demo collection instead of the API")
}

// SetServices wires the command tree to its services.
func SetServices(loader SettingsLoader, factory DashboardFactory) {
	settingsLoader = loader
	dashboardFactory = factory
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func preRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if settingsLoader == nil {
		return nil
	}
	svc, err := settingsLoader(configDir)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	settingsService = svc
	return nil
}

// effectiveSettings returns the stored settings with command line overrides applied.
func effectiveSettings(cmd *cobra.Command) (domain.AppSettings, error) {
	if settingsService == nil {
		return domain.AppSettings{}, errors.New("settings service not configured")
	}

	stored, err := settingsService.Get()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	settings := *stored

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		settings.API.BaseURL = baseURLFlag
	}
	if flags.Changed("page-size") {
		settings.API.PageSize = pageSize
	}
	if err := settings.API.Validate(); err != nil {
		return domain.AppSettings{}, err
	}

	return settings, nil
}

// newDashboard builds a dashboard session for cmd.
func newDashboard(cmd *cobra.Command, observer driven.Observer) (driving.DashboardService, error) {
	if dashboardFactory == nil {
		return nil, errors.New("dashboard factory not configured")
	}

	settings, err := effectiveSettings(cmd)
	if err != nil {
		return nil, err
	}

	svc, err := dashboardFactory(cmd.Context(), DashboardOptions{
		Settings: settings,
		Demo:     demo,
		Observer: observer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard: %w", err)
	}
	return svc, nil
}

// loadPages runs the initial load and then keeps paging until pages have been
// fetched, or until the collection is exhausted when all is set.
func loadPages(ctx context.Context, svc driving.DashboardService, pages int, all bool) (int, error) {
	loaded := 0
	for fetch := svc.Activate(); fetch != nil; fetch = svc.RequestMore() {
		if err := fetch.Run(ctx); err != nil {
			return loaded, fmt.Errorf("failed to load page %d: %w", loaded+1, err)
		}
		loaded++
		if !all && loaded >= pages {
			break
		}
	}
	logger.Debug("loaded %d page(s)", loaded)
	return loaded, nil
}
