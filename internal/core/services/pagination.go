package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
	"github.com/custodia-labs/creatives-cli/internal/logger"
)

// DefaultPageSize is the number of creatives requested per page.
const DefaultPageSize = domain.DefaultPageSize

// PaginationController owns the collected creatives and the cursor and drives
// the idle -> fetching -> idle|exhausted lifecycle.
//
// At most one fetch is in flight at any time. The guard is claimed
// synchronously by RequestMore or Activate, before any network I/O, so a
// second trigger arriving while the first fetch is outstanding is a no-op.
type PaginationController struct {
	source   driven.CreativeSource
	observer driven.Observer
	pageSize int

	mu         sync.Mutex
	state      domain.FetchState
	creatives  []domain.Creative
	cursor     string
	activated  bool
	generation uint64
	inflight   uint64
}

// NewPaginationController creates a controller fetching from source.
// A non-positive pageSize falls back to DefaultPageSize.
func NewPaginationController(
	source driven.CreativeSource,
	observer driven.Observer,
	pageSize int,
) *PaginationController {
	if observer == nil {
		observer = driven.NopObserver{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PaginationController{
		source:   source,
		observer: observer,
		pageSize: pageSize,
		state:    domain.FetchIdle,
	}
}

// Activate returns the initial-load fetch on the first call of a session.
// Later calls return nil, even if the first fetch was rejected by the guard.
//
// After a Reset that left a fetch in flight, Activate returns nil and stays
// armed until that fetch has completed.
func (c *PaginationController) Activate() driving.PendingFetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activated {
		return nil
	}
	if c.state == domain.FetchFetching && c.inflight != c.generation {
		logger.Debug("Deferring initial load until generation %d completes", c.inflight)
		return nil
	}
	c.activated = true
	return c.claim()
}

// RequestMore claims the fetch slot for the next page.
// Returns nil if a fetch is in flight or the collection is exhausted.
func (c *PaginationController) RequestMore() driving.PendingFetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.claim()
}

// LoadMore requests and runs the next fetch synchronously.
// Returns false if the guard rejected the request.
func (c *PaginationController) LoadMore(ctx context.Context) (bool, error) {
	f := c.RequestMore()
	if f == nil {
		return false, nil
	}
	return true, f.Run(ctx)
}

// Reset discards collected creatives and the cursor and re-arms activation.
// A fetch still in flight keeps the controller in FetchFetching until it
// completes; its outcome is dropped and no new fetch is claimed before then.
func (c *PaginationController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.creatives = nil
	c.cursor = ""
	if c.state != domain.FetchFetching {
		c.state = domain.FetchIdle
	}
	c.activated = false
	logger.Debug("Pagination reset (generation %d)", c.generation)
}

// claim transitions idle -> fetching (caller must hold lock).
func (c *PaginationController) claim() driving.PendingFetch {
	if c.state != domain.FetchIdle {
		logger.Debug("Ignoring fetch request while %s", c.state)
		return nil
	}

	c.state = domain.FetchFetching
	c.inflight = c.generation
	return &pendingFetch{
		controller: c,
		generation: c.generation,
		req: domain.PageRequest{
			Limit:  c.pageSize,
			Cursor: c.cursor,
		},
	}
}

// complete applies a fetch outcome.
func (c *PaginationController) complete(f *pendingFetch, page *domain.Page, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f.generation != c.generation {
		// The guard admits one fetch at a time, so this is the one in flight.
		c.state = domain.FetchIdle
		logger.Debug("Discarding fetch from generation %d", f.generation)
		return err
	}

	if err != nil {
		c.state = domain.FetchIdle
		logger.Error("Error loading creatives: %v", err)
		return err
	}

	c.creatives = append(c.creatives, page.Creatives...)
	c.cursor = page.NextCursor
	if page.HasMore {
		c.state = domain.FetchIdle
	} else {
		c.state = domain.FetchExhausted
	}

	logger.Info("Loaded %d creatives (total %d, state %s)", len(page.Creatives), len(c.creatives), c.state)
	return nil
}

// Creatives returns a copy of the collected creatives in load order.
func (c *PaginationController) Creatives() []domain.Creative {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Creative, len(c.creatives))
	copy(out, c.creatives)
	return out
}

// Cursor returns the continuation token for the next page.
func (c *PaginationController) Cursor() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// State returns the current fetch state.
func (c *PaginationController) State() domain.FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanLoadMore reports whether the collection is not exhausted.
func (c *PaginationController) CanLoadMore() bool {
	return c.State() != domain.FetchExhausted
}

// IsLoading reports whether a fetch is in flight.
func (c *PaginationController) IsLoading() bool {
	return c.State() == domain.FetchFetching
}

// PageSize returns the configured page size.
func (c *PaginationController) PageSize() int {
	return c.pageSize
}

// pendingFetch is a claimed fetch slot.
type pendingFetch struct {
	controller *PaginationController
	generation uint64
	req        domain.PageRequest
	ran        atomic.Bool
}

// Request implements driving.PendingFetch.
func (f *pendingFetch) Request() domain.PageRequest {
	return f.req
}

// Run implements driving.PendingFetch.
func (f *pendingFetch) Run(ctx context.Context) error {
	if !f.ran.CompareAndSwap(false, true) {
		return domain.ErrFetchConsumed
	}

	c := f.controller
	start := time.Now()
	page, err := c.fetch(ctx, f.req)

	count := 0
	if page != nil {
		count = len(page.Creatives)
	}
	c.observer.RecordFetch(time.Since(start), count, err)

	return c.complete(f, page, err)
}

func (c *PaginationController) fetch(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if c.source == nil {
		return nil, domain.ErrSourceUnavailable
	}

	logger.Debug("Fetching page (limit %d, cursor %q)", req.Limit, req.Cursor)
	page, err := c.source.FetchPage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("fetch page: %w: empty response", domain.ErrInvalidInput)
	}
	return page, nil
}
