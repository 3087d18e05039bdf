package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the creatives dashboard
to AI assistants.

Tools:
  load_more       fetch the next page (the first call runs the initial load)
  list_creatives  list loaded creatives, optionally filtered by labels
  list_facets     list the labels seen so far
  get_creative    show one creative with decoded metrics

By default the server communicates over stdio. Use --port to serve
streamable HTTP instead.

Examples:
  creatives mcp serve
  creatives mcp serve --port 8080
  creatives --demo mcp serve`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	svc, err := newDashboard(cmd, nil)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Dashboard: svc})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
