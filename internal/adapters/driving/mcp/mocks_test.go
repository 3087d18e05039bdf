package mcp

import (
	"context"
	"errors"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/services"
)

func testCreatives() []domain.Creative {
	return []domain.Creative{
		{ID: "cr-1", ImageURL: "https://cdn/1.png", MetadataRaw: `{"objective":"awareness"}`,
			LabelsRaw: `["summer","video"]`, MetricsRaw: `{"impressions":100,"clicks":5,"ctr":0.05}`},
		{ID: "cr-2", MetadataRaw: `{"objective":"sales"}`, LabelsRaw: `["winter"]`, MetricsRaw: `{oops`},
		{ID: "cr-3", LabelsRaw: `["video"]`, MetricsRaw: `{}`},
	}
}

func newTestServer(pageSize int) (*Server, *services.Dashboard) {
	d := services.NewDashboard(memory.NewCreativeSource(testCreatives()), nil, pageSize)
	s, err := NewServer(&Ports{Dashboard: d})
	if err != nil {
		panic(err)
	}
	return s, d
}

// failingSource is a driven.CreativeSource that always fails.
type failingSource struct{}

func (failingSource) FetchPage(context.Context, domain.PageRequest) (*domain.Page, error) {
	return nil, errors.New("upstream unavailable")
}
