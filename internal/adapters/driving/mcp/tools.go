package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// LoadMoreInput is the input schema for the load_more tool.
type LoadMoreInput struct{}

// LoadMoreOutput is the output schema for the load_more tool.
type LoadMoreOutput struct {
	Loaded      bool `json:"loaded"`
	Total       int  `json:"total"`
	CanLoadMore bool `json:"can_load_more"`
}

// ListCreativesInput is the input schema for the list_creatives tool.
type ListCreativesInput struct {
	Labels []string `json:"labels,omitempty" jsonschema:"only return creatives carrying at least one of these labels"`
}

// ListCreativesOutput is the output schema for the list_creatives tool.
type ListCreativesOutput struct {
	Creatives   []CreativeOutput `json:"creatives"`
	Count       int              `json:"count"`
	Total       int              `json:"total"`
	CanLoadMore bool             `json:"can_load_more"`
}

// ListFacetsInput is the input schema for the list_facets tool.
type ListFacetsInput struct{}

// ListFacetsOutput is the output schema for the list_facets tool.
type ListFacetsOutput struct {
	Facets []string `json:"facets"`
}

// GetCreativeInput is the input schema for the get_creative tool.
type GetCreativeInput struct {
	ID string `json:"id" jsonschema:"the creative ID"`
}

// CreativeOutput represents a single creative.
type CreativeOutput struct {
	ID           string         `json:"id"`
	ImageURL     string         `json:"image_url,omitempty"`
	Objective    string         `json:"objective,omitempty"`
	Labels       []string       `json:"labels"`
	Metrics      *MetricsOutput `json:"metrics,omitempty"`
	MetricsError string         `json:"metrics_error,omitempty"`
}

// MetricsOutput holds a creative's decoded performance numbers.
type MetricsOutput struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_more",
		Description: "Fetch the next page of creatives. Does nothing once every creative is loaded",
	}, s.handleLoadMore)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_creatives",
		Description: "List loaded creatives, optionally filtered by labels (any match)",
	}, s.handleListCreatives)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List the distinct labels across loaded creatives in first-seen order",
	}, s.handleListFacets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_creative",
		Description: "Get a loaded creative with its decoded metadata and metrics",
	}, s.handleGetCreative)
}

// handleLoadMore runs the initial load on first use and the next page afterwards.
func (s *Server) handleLoadMore(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ LoadMoreInput,
) (*mcp.CallToolResult, LoadMoreOutput, error) {
	dashboard := s.ports.Dashboard

	fetch := dashboard.Activate()
	if fetch == nil {
		fetch = dashboard.RequestMore()
	}

	loaded := false
	if fetch != nil {
		if err := fetch.Run(ctx); err != nil {
			return nil, LoadMoreOutput{}, fmt.Errorf("loading creatives: %w", err)
		}
		loaded = true
	}

	state := dashboard.StateFor(nil)
	return nil, LoadMoreOutput{
		Loaded:      loaded,
		Total:       state.Total,
		CanLoadMore: state.CanLoadMore,
	}, nil
}

// handleListCreatives lists loaded creatives matching any of the given labels.
func (s *Server) handleListCreatives(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListCreativesInput,
) (*mcp.CallToolResult, ListCreativesOutput, error) {
	state := s.ports.Dashboard.StateFor(input.Labels)

	output := ListCreativesOutput{
		Creatives:   make([]CreativeOutput, len(state.VisibleCreatives)),
		Count:       len(state.VisibleCreatives),
		Total:       state.Total,
		CanLoadMore: state.CanLoadMore,
	}
	for i := range state.VisibleCreatives {
		output.Creatives[i] = s.creativeOutput(state.VisibleCreatives[i])
	}

	return nil, output, nil
}

// handleListFacets lists the facet index.
func (s *Server) handleListFacets(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListFacetsInput,
) (*mcp.CallToolResult, ListFacetsOutput, error) {
	return nil, ListFacetsOutput{Facets: s.ports.Dashboard.StateFor(nil).AvailableFacets}, nil
}

// handleGetCreative returns a single creative.
func (s *Server) handleGetCreative(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetCreativeInput,
) (*mcp.CallToolResult, CreativeOutput, error) {
	c, ok := s.ports.Dashboard.Creative(input.ID)
	if !ok {
		return nil, CreativeOutput{}, fmt.Errorf("%w: %q", ErrCreativeNotFound, input.ID)
	}
	return nil, s.creativeOutput(c), nil
}

// creativeOutput decodes c. Malformed metrics are reported in MetricsError
// and do not fail the call.
func (s *Server) creativeOutput(c domain.Creative) CreativeOutput {
	d := s.ports.Dashboard

	out := CreativeOutput{
		ID:        c.ID,
		ImageURL:  c.ImageURL,
		Objective: d.Metadata(c).Objective,
		Labels:    d.Labels(c),
	}

	m, err := d.Metrics(c)
	if err != nil {
		out.MetricsError = err.Error()
		return out
	}
	out.Metrics = &MetricsOutput{
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Spend:       m.Spend,
		Conversions: m.Conversions,
		CTR:         m.CTR,
	}
	return out
}
