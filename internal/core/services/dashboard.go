package services

import (
	"sync"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// Ensure Dashboard implements the interface.
var _ driving.DashboardService = (*Dashboard)(nil)

// Dashboard composes paginated retrieval with facet filtering.
// Facets and the visible subset are recomputed from the collected creatives
// on every State call rather than maintained incrementally.
type Dashboard struct {
	controller *PaginationController
	decoder    *Decoder

	mu        sync.RWMutex
	selection []string
}

// NewDashboard creates a dashboard backed by source.
// observer may be nil. A non-positive pageSize uses DefaultPageSize.
func NewDashboard(source driven.CreativeSource, observer driven.Observer, pageSize int) *Dashboard {
	return &Dashboard{
		controller: NewPaginationController(source, observer, pageSize),
		decoder:    NewDecoder(observer),
		selection:  []string{},
	}
}

// Controller returns the underlying pagination controller.
func (d *Dashboard) Controller() *PaginationController {
	return d.controller
}

// Activate implements driving.DashboardService.
func (d *Dashboard) Activate() driving.PendingFetch {
	return d.controller.Activate()
}

// RequestMore implements driving.DashboardService.
func (d *Dashboard) RequestMore() driving.PendingFetch {
	return d.controller.RequestMore()
}

// Reset implements driving.DashboardService.
// The facet selection is kept.
func (d *Dashboard) Reset() {
	d.controller.Reset()
}

// SetSelection implements driving.DashboardService.
func (d *Dashboard) SetSelection(selection []string) {
	normalised := normaliseSelection(selection)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = normalised
}

// Selection returns a copy of the current selection.
func (d *Dashboard) Selection() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.selection))
	copy(out, d.selection)
	return out
}

// State implements driving.DashboardService.
func (d *Dashboard) State() driving.DashboardState {
	return d.StateFor(d.Selection())
}

// StateFor implements driving.DashboardService.
func (d *Dashboard) StateFor(selection []string) driving.DashboardState {
	selection = normaliseSelection(selection)
	creatives := d.controller.Creatives()
	state := d.controller.State()

	return driving.DashboardState{
		VisibleCreatives: FilterCreatives(creatives, selection, d.decoder),
		AvailableFacets:  BuildFacetIndex(creatives, d.decoder),
		Selection:        selection,
		CanLoadMore:      state != domain.FetchExhausted,
		IsLoading:        state == domain.FetchFetching,
		Total:            len(creatives),
	}
}

// Creative implements driving.DashboardService.
// With duplicate IDs the first loaded creative wins.
func (d *Dashboard) Creative(id string) (domain.Creative, bool) {
	for _, c := range d.controller.Creatives() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Creative{}, false
}

// Metadata implements driving.DashboardService.
func (d *Dashboard) Metadata(c domain.Creative) domain.Metadata {
	return d.decoder.Metadata(c)
}

// Labels implements driving.DashboardService.
func (d *Dashboard) Labels(c domain.Creative) []string {
	return d.decoder.Labels(c)
}

// Metrics implements driving.DashboardService.
func (d *Dashboard) Metrics(c domain.Creative) (domain.Metrics, error) {
	return d.decoder.Metrics(c)
}
