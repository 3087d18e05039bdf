package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchState_String(t *testing.T) {
	tests := []struct {
		state    FetchState
		expected string
	}{
		{FetchIdle, "idle"},
		{FetchFetching, "fetching"},
		{FetchExhausted, "exhausted"},
		{FetchState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestFetchState_ZeroValueIsIdle(t *testing.T) {
	var s FetchState
	assert.Equal(t, FetchIdle, s)
}

func TestPage_ZeroValue(t *testing.T) {
	var p Page

	assert.Empty(t, p.Creatives)
	assert.False(t, p.HasMore)
	assert.Empty(t, p.NextCursor)
}

func TestCreative_Fields(t *testing.T) {
	c := Creative{
		ID:          "c-1",
		ImageURL:    "https://img.example/c-1.png",
		MetadataRaw: `{"objective":"CONVERSIONS"}`,
		MetricsRaw:  `{"impressions":100}`,
		LabelsRaw:   `["summer","sale"]`,
	}

	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "https://img.example/c-1.png", c.ImageURL)
	assert.Contains(t, c.MetadataRaw, "objective")
	assert.Contains(t, c.MetricsRaw, "impressions")
	assert.Contains(t, c.LabelsRaw, "summer")
}
