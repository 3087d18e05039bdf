// Command creatives pages through a creatives API and filters the results by label.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/creativesapi"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
	"github.com/custodia-labs/creatives-cli/internal/core/services"
)

const (
	demoSize    = 57
	demoLatency = 400 * time.Millisecond
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetServices(loadSettings, newDashboard)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func loadSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

func newDashboard(ctx context.Context, opts cli.DashboardOptions) (driving.DashboardService, error) {
	var source driven.CreativeSource
	if opts.Demo {
		source = memory.NewCreativeSource(memory.DemoCreatives(demoSize)).WithLatency(demoLatency)
	} else {
		api := opts.Settings.API
		client, err := creativesapi.NewClient(ctx, creativesapi.Config{
			BaseURL:   api.BaseURL,
			Token:     api.Token,
			RateLimit: api.RateLimit,
			Timeout:   api.Timeout(),
		})
		if err != nil {
			return nil, err
		}
		source = client
	}

	return services.NewDashboard(source, opts.Observer, opts.Settings.API.PageSize), nil
}
