package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive creatives dashboard.

The first page loads on start. Labels from every loaded creative appear in
the filter bar; selecting labels shows creatives carrying any of them.

Controls:
  ↑/k, ↓/j   Navigate creatives
  Enter      Open creative details
  m          Load more
  r          Reload from the first page
  Tab        Switch between list and filter bar
  Space      Toggle the label under the cursor
  c          Clear the filter
  ?          Toggle help
  q          Quit

Log output is discarded while the dashboard is open unless --log-file is set.
With --metrics-addr (or metrics.enabled in the config) Prometheus metrics are
served on /metrics for the lifetime of the session.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var (
	tuiMetricsAddr string
	tuiLogFile     string
)

// runProgram runs the bubbletea program. Tests replace it.
var runProgram = func(app *tui.App) error {
	return app.Run()
}

func init() {
	tuiCmd.Flags().StringVar(&tuiMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "append log output to this file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	settings, err := effectiveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	observer, err := startMetrics(ctx, metricsAddress(settings))
	if err != nil {
		return err
	}

	svc, err := newDashboard(cmd, observer)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(svc))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	restore, err := redirectLogs(tuiLogFile)
	if err != nil {
		return err
	}
	defer restore()

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// metricsAddress returns the address to serve metrics on, or "" when disabled.
func metricsAddress(settings domain.AppSettings) string {
	if tuiMetricsAddr != "" {
		return tuiMetricsAddr
	}
	if settings.Metrics.Enabled {
		return settings.Metrics.Address
	}
	return ""
}

// startMetrics serves a fresh registry on addr until ctx is done.
// An empty addr disables metrics and returns a nil observer.
func startMetrics(ctx context.Context, addr string) (driven.Observer, error) {
	if addr == "" {
		return nil, nil
	}

	reg := prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver("", reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	srv, err := metrics.Listen(addr, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to start metrics server: %w", err)
	}
	go func() {
		if err := srv.Serve(ctx); err != nil {
			logger.Warn("metrics server stopped: %v", err)
		}
	}()

	return observer, nil
}

// redirectLogs sends logger output to path, or discards it when path is empty,
// so log lines do not tear the alternate screen. The returned func restores
// the previous writer.
func redirectLogs(path string) (func(), error) {
	previous := logger.Output()

	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	logger.SetOutput(w)
	return func() {
		logger.SetOutput(previous)
		if f != nil {
			f.Close() //nolint:errcheck
		}
	}, nil
}
