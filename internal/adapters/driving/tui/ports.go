// Package tui provides an interactive terminal dashboard for creatives.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dashboard drives pagination and facet filtering.
	Dashboard driving.DashboardService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(dashboard driving.DashboardService) *Ports {
	return &Ports{Dashboard: dashboard}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	return nil
}
