package creativesapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// pageResponse is the JSON body of GET /creatives.
// CreativeDetails is nil when the field is missing or null.
type pageResponse struct {
	CreativeDetails *[]creativeResponse `json:"creative_details"`
	HasMore         bool                `json:"has_more"`
	NextCursor      token               `json:"next_cursor"`
}

// creativeResponse is one element of creative_details.
type creativeResponse struct {
	CreativeID         token        `json:"creative_id"`
	ImageURL           string       `json:"image_url"`
	RelevantMetadata   embeddedJSON `json:"relevant_metadata"`
	PerformanceMetrics embeddedJSON `json:"performance_metrics"`
	Labels             embeddedJSON `json:"labels"`
}

// token is an identifier the server may send as a string or a number.
// Numbers keep their literal text; null becomes empty.
type token string

func (t *token) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = token(s)
		return nil
	}
	*t = token(data)
	return nil
}

// embeddedJSON is a field carrying JSON text. The service normally sends it
// as a string; any other JSON value is kept verbatim so the core decoder sees
// the same text either way.
type embeddedJSON string

func (e *embeddedJSON) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = embeddedJSON(s)
		return nil
	}
	*e = embeddedJSON(data)
	return nil
}

// validate rejects bodies that decode but are not a page.
func (p *pageResponse) validate() error {
	if p.CreativeDetails == nil {
		return fmt.Errorf("%w: missing creative_details", ErrMalformedResponse)
	}
	return nil
}

// toDomain converts the wire page into a domain page.
func (p *pageResponse) toDomain() *domain.Page {
	var details []creativeResponse
	if p.CreativeDetails != nil {
		details = *p.CreativeDetails
	}
	creatives := make([]domain.Creative, 0, len(details))
	for i := range details {
		c := &details[i]
		creatives = append(creatives, domain.Creative{
			ID:          string(c.CreativeID),
			ImageURL:    c.ImageURL,
			MetadataRaw: string(c.RelevantMetadata),
			MetricsRaw:  string(c.PerformanceMetrics),
			LabelsRaw:   string(c.Labels),
		})
	}
	return &domain.Page{
		Creatives:  creatives,
		HasMore:    p.HasMore,
		NextCursor: string(p.NextCursor),
	}
}
