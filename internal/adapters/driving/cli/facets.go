package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the labels found on loaded creatives",
	Long: `Load creatives and print every distinct label in the order it was
first seen. These are the values accepted by 'creatives list --label'.`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

var (
	facetsPages int
	facetsAll   bool
	facetsJSON  bool
)

func init() {
	facetsCmd.Flags().IntVarP(&facetsPages, "pages", "n", 1, "number of pages to load")
	facetsCmd.Flags().BoolVar(&facetsAll, "all", false, "load every page")
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "print JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	if facetsPages <= 0 && !facetsAll {
		return errors.New("--pages must be positive")
	}

	svc, err := newDashboard(cmd, nil)
	if err != nil {
		return err
	}
	if _, err := loadPages(cmd.Context(), svc, facetsPages, facetsAll); err != nil {
		return err
	}

	facets := svc.StateFor(nil).AvailableFacets
	if facetsJSON {
		return writeJSON(cmd, facets)
	}

	w := cmd.OutOrStdout()
	if len(facets) == 0 {
		fmt.Fprintln(w, "No labels found.")
		return nil
	}
	for _, f := range facets {
		fmt.Fprintln(w, f)
	}
	return nil
}
