// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// creatives dashboard. It lets AI assistants page through creatives and
// filter them by label.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("mcp: dashboard service is required")

// ErrCreativeNotFound is returned by get_creative for an unknown ID.
var ErrCreativeNotFound = fmt.Errorf("mcp: creative %w", domain.ErrNotFound)
