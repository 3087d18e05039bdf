package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List creatives",
	Long: `Load creatives from the API and print them.

By default a single page is loaded. Use --pages to load more, or --all to
keep loading until the collection is exhausted.

Repeat --label to filter: a creative is listed when it carries any of the
given labels.

Examples:
  creatives list
  creatives list --pages 3 --label summer --label video
  creatives list --all --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listPages  int
	listAll    bool
	listLabels []string
	listJSON   bool
)

func init() {
	listCmd.Flags().IntVarP(&listPages, "pages", "n", 1, "number of pages to load")
	listCmd.Flags().BoolVar(&listAll, "all", false, "load every page")
	listCmd.Flags().StringArrayVarP(&listLabels, "label", "l", nil, "only list creatives with this label (repeatable)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")
	rootCmd.AddCommand(listCmd)
}

// listedCreative is the JSON shape of one listed creative.
type listedCreative struct {
	ID           string          `json:"id"`
	ImageURL     string          `json:"image_url,omitempty"`
	Objective    string          `json:"objective,omitempty"`
	Labels       []string        `json:"labels"`
	Metrics      *domain.Metrics `json:"metrics,omitempty"`
	MetricsError string          `json:"metrics_error,omitempty"`
}

type listOutput struct {
	Creatives   []listedCreative `json:"creatives"`
	Total       int              `json:"total"`
	CanLoadMore bool             `json:"can_load_more"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if listPages <= 0 && !listAll {
		return errors.New("--pages must be positive")
	}

	svc, err := newDashboard(cmd, nil)
	if err != nil {
		return err
	}
	if _, err := loadPages(cmd.Context(), svc, listPages, listAll); err != nil {
		return err
	}

	state := svc.StateFor(listLabels)

	out := listOutput{
		Creatives:   make([]listedCreative, len(state.VisibleCreatives)),
		Total:       state.Total,
		CanLoadMore: state.CanLoadMore,
	}
	for i, c := range state.VisibleCreatives {
		out.Creatives[i] = describe(svc, c)
	}

	if listJSON {
		return writeJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	if len(out.Creatives) == 0 {
		fmt.Fprintln(w, "No creatives found.")
	} else {
		fmt.Fprintln(w, creativeTable(out.Creatives))
	}
	fmt.Fprintf(w, "Showing %d of %d loaded creatives.\n", len(out.Creatives), out.Total)
	if out.CanLoadMore {
		fmt.Fprintln(w, "More creatives are available; use --pages or --all to load them.")
	}
	return nil
}

func describe(svc driving.DashboardService, c domain.Creative) listedCreative {
	lc := listedCreative{
		ID:        c.ID,
		ImageURL:  c.ImageURL,
		Objective: svc.Metadata(c).Objective,
		Labels:    svc.Labels(c),
	}
	m, err := svc.Metrics(c)
	if err != nil {
		lc.MetricsError = err.Error()
	} else {
		lc.Metrics = &m
	}
	return lc
}

func creativeTable(creatives []listedCreative) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "OBJECTIVE", "LABELS", "IMPRESSIONS", "CLICKS", "CTR")

	for _, c := range creatives {
		objective := c.Objective
		if objective == "" {
			objective = "-"
		}
		impressions, clicks, ctr := "n/a", "n/a", "n/a"
		if c.Metrics != nil {
			impressions = fmt.Sprintf("%.0f", c.Metrics.Impressions)
			clicks = fmt.Sprintf("%.0f", c.Metrics.Clicks)
			ctr = fmt.Sprintf("%.4g", c.Metrics.CTR)
		}
		t.Row(c.ID, objective, strings.Join(c.Labels, ", "), impressions, clicks, ctr)
	}

	return t.Render()
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
