package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockCreativeSource records requests and delegates to FetchPageFunc.
type mockCreativeSource struct {
	FetchPageFunc func(ctx context.Context, req domain.PageRequest) (*domain.Page, error)

	mu       sync.Mutex
	requests []domain.PageRequest
}

func (m *mockCreativeSource) FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.FetchPageFunc != nil {
		return m.FetchPageFunc(ctx, req)
	}
	return &domain.Page{}, nil
}

func (m *mockCreativeSource) Requests() []domain.PageRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.PageRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// pagedSource serves the given pages in order, ignoring the cursor.
func pagedSource(pages ...*domain.Page) *mockCreativeSource {
	var mu sync.Mutex
	next := 0
	return &mockCreativeSource{
		FetchPageFunc: func(_ context.Context, _ domain.PageRequest) (*domain.Page, error) {
			mu.Lock()
			defer mu.Unlock()
			if next >= len(pages) {
				return &domain.Page{}, nil
			}
			p := pages[next]
			next++
			return p, nil
		},
	}
}

// mockObserver records telemetry calls.
type mockObserver struct {
	mu             sync.Mutex
	fetches        int
	fetchErrors    int
	creatives      int
	decodeFailures map[string]int
}

func newMockObserver() *mockObserver {
	return &mockObserver{decodeFailures: make(map[string]int)}
}

func (m *mockObserver) RecordFetch(_ time.Duration, creatives int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	m.creatives += creatives
	if err != nil {
		m.fetchErrors++
	}
}

func (m *mockObserver) RecordDecodeFailure(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decodeFailures[field]++
}

func (m *mockObserver) DecodeFailures(field string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decodeFailures[field]
}

func creative(id, labels string) domain.Creative {
	return domain.Creative{ID: id, LabelsRaw: labels}
}

func ids(creatives []domain.Creative) []string {
	out := make([]string, 0, len(creatives))
	for _, c := range creatives {
		out = append(out, c.ID)
	}
	return out
}
