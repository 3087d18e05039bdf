package driving

import (
	"context"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// PendingFetch is a fetch that has already passed the in-flight guard.
// The guard is claimed when the PendingFetch is created; Run performs the
// remote call and applies the outcome. Run may only be called once.
type PendingFetch interface {
	// Run fetches the page and merges it. A failed fetch leaves the
	// collected creatives and cursor untouched and returns the error.
	Run(ctx context.Context) error

	// Request returns the page request this fetch will issue.
	Request() domain.PageRequest
}

// DashboardState is everything a presentation layer needs to render the dashboard.
type DashboardState struct {
	// VisibleCreatives are the loaded creatives that pass the current selection, in load order.
	VisibleCreatives []domain.Creative

	// AvailableFacets are the distinct labels across all loaded creatives, in first-seen order.
	AvailableFacets []string

	// Selection is the current facet selection. Empty means no filter.
	Selection []string

	// CanLoadMore is false once the remote collection is exhausted.
	CanLoadMore bool

	// IsLoading is true while a fetch is in flight.
	IsLoading bool

	// Total is the number of loaded creatives before filtering.
	Total int
}

// DashboardService drives paginated retrieval and facet filtering of creatives.
type DashboardService interface {
	// Activate returns the initial-load fetch the first time it is called in a
	// session and nil on every later call.
	Activate() PendingFetch

	// RequestMore returns a fetch for the next page, or nil when a fetch is
	// already in flight or the collection is exhausted.
	RequestMore() PendingFetch

	// Reset discards all loaded creatives and starts a fresh session.
	Reset()

	// SetSelection replaces the facet selection.
	SetSelection(selection []string)

	// State returns a freshly computed render state.
	State() DashboardState

	// StateFor computes the render state for selection without changing
	// the stored selection.
	StateFor(selection []string) DashboardState

	// Creative looks up a loaded creative by ID.
	Creative(id string) (domain.Creative, bool)

	// Metadata decodes a creative's metadata, degrading to empty on error.
	Metadata(c domain.Creative) domain.Metadata

	// Labels decodes a creative's labels, degrading to empty on error.
	Labels(c domain.Creative) []string

	// Metrics decodes a creative's metrics. Malformed payloads return an error.
	Metrics(c domain.Creative) (domain.Metrics, error)
}
