package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
)

// Ensure CreativeSource implements the interface.
var _ driven.CreativeSource = (*CreativeSource)(nil)

// CreativeSource is an in-memory implementation of driven.CreativeSource.
// It paginates a fixed list using the decimal offset of the next creative as cursor.
type CreativeSource struct {
	mu        sync.RWMutex
	creatives []domain.Creative
	latency   time.Duration
	requests  int
}

// NewCreativeSource creates a source serving creatives in the given order.
func NewCreativeSource(creatives []domain.Creative) *CreativeSource {
	cp := make([]domain.Creative, len(creatives))
	copy(cp, creatives)
	return &CreativeSource{creatives: cp}
}

// WithLatency delays every fetch by d, honouring context cancellation.
func (s *CreativeSource) WithLatency(d time.Duration) *CreativeSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
	return s
}

// Add appends creatives to the end of the collection.
func (s *CreativeSource) Add(creatives ...domain.Creative) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatives = append(s.creatives, creatives...)
}

// Requests returns how many pages have been served.
func (s *CreativeSource) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

// FetchPage implements driven.CreativeSource.
func (s *CreativeSource) FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if req.Limit <= 0 {
		return nil, fmt.Errorf("page limit %d: %w", req.Limit, domain.ErrInvalidInput)
	}

	offset := 0
	if req.Cursor != "" {
		n, err := strconv.Atoi(req.Cursor)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("cursor %q: %w", req.Cursor, domain.ErrInvalidInput)
		}
		offset = n
	}

	s.mu.RLock()
	latency := s.latency
	s.mu.RUnlock()
	if latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(latency):
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	if offset > len(s.creatives) {
		offset = len(s.creatives)
	}
	end := min(offset+req.Limit, len(s.creatives))

	page := &domain.Page{
		Creatives: make([]domain.Creative, end-offset),
		HasMore:   end < len(s.creatives),
	}
	copy(page.Creatives, s.creatives[offset:end])
	if page.HasMore {
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}
