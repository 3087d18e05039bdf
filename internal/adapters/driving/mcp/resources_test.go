package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCreativeID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid creative URI", "creatives://creatives/cr-1", "cr-1"},
		{"invalid prefix", "file://creatives/cr-1", ""},
		{"no id", "creatives://creatives/", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCreativeID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleFacetsResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(10)
	_, _, err := server.handleLoadMore(ctx, nil, LoadMoreInput{})
	require.NoError(t, err)

	res, err := server.handleFacetsResource(ctx, readRequest("creatives://facets"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)

	var facets []string
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &facets))
	assert.Equal(t, []string{"summer", "video", "winter"}, facets)
}

func TestServer_handleCreativeResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(10)
	_, _, err := server.handleLoadMore(ctx, nil, LoadMoreInput{})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		res, err := server.handleCreativeResource(ctx, readRequest("creatives://creatives/cr-3"))
		require.NoError(t, err)

		var out CreativeOutput
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &out))
		assert.Equal(t, "cr-3", out.ID)
		assert.Equal(t, []string{"video"}, out.Labels)
		require.NotNil(t, out.Metrics)
	})

	t.Run("unknown creative", func(t *testing.T) {
		_, err := server.handleCreativeResource(ctx, readRequest("creatives://creatives/missing"))
		assert.Error(t, err)
	})

	t.Run("bad uri", func(t *testing.T) {
		_, err := server.handleCreativeResource(ctx, readRequest("creatives://other"))
		assert.Error(t, err)
	})
}
