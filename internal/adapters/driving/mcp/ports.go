package mcp

import (
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dashboard drives pagination and facet filtering.
	Dashboard driving.DashboardService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	return nil
}
