package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
	"github.com/custodia-labs/creatives-cli/internal/core/services"
)

var testCreatives = []domain.Creative{
	{ID: "cr-1", ImageURL: "https://cdn.example/1.png", MetadataRaw: `{"objective":"REACH"}`,
		LabelsRaw: `["summer","video"]`, MetricsRaw: `{"impressions":1000,"clicks":50,"ctr":0.05}`},
	{ID: "cr-2", MetadataRaw: `{"objective":"CONVERSIONS"}`, LabelsRaw: `["sale"]`, MetricsRaw: `{"impressions":`},
	{ID: "cr-3", LabelsRaw: `["video"]`, MetricsRaw: `{"impressions":10}`},
	{ID: "cr-4", LabelsRaw: `[]`, MetricsRaw: `{}`},
	{ID: "cr-5", LabelsRaw: `["summer"]`, MetricsRaw: `{}`},
}

// failingSource always fails to fetch.
type failingSource struct{}

func (failingSource) FetchPage(context.Context, domain.PageRequest) (*domain.Page, error) {
	return nil, errors.New("connection refused")
}

// testFactory builds dashboards over testCreatives and records the options it was given.
type testFactory struct {
	calls []DashboardOptions
	err   error
}

func (f *testFactory) build(_ context.Context, opts DashboardOptions) (driving.DashboardService, error) {
	f.calls = append(f.calls, opts)
	if f.err != nil {
		return nil, f.err
	}
	source := memory.NewCreativeSource(testCreatives)
	return services.NewDashboard(source, opts.Observer, opts.Settings.API.PageSize), nil
}

// activeFactory is the factory installed by the last setupTestServices call.
var activeFactory *testFactory

// setupTestServices installs in-memory services and returns a cleanup func
// restoring the previous wiring and resetting all flags.
func setupTestServices() func() {
	prevLoader, prevSettings, prevFactory := settingsLoader, settingsService, dashboardFactory
	prevReadSecret, prevRunProgram := readSecret, runProgram

	settingsLoader = nil
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	activeFactory = &testFactory{}
	dashboardFactory = activeFactory.build

	return func() {
		settingsLoader, settingsService, dashboardFactory = prevLoader, prevSettings, prevFactory
		readSecret, runProgram = prevReadSecret, prevRunProgram
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}
}

// execute runs rootCmd with args and returns everything it printed.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so that values
// from one Execute do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
