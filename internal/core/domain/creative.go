package domain

// Creative is one advertising creative returned by the remote service.
// The embedded raw fields are JSON text as delivered; decoding them is the
// job of the services layer so that malformed payloads never reach here as errors.
type Creative struct {
	// ID is the unique creative identifier.
	ID string

	// ImageURL points at the creative's image. It is not interpreted.
	ImageURL string

	// MetadataRaw is a JSON object carrying, among other things, the objective.
	MetadataRaw string

	// MetricsRaw is a JSON object with the creative's performance numbers.
	MetricsRaw string

	// LabelsRaw is a JSON array of facet values in source order.
	LabelsRaw string
}

// Metadata is the decoded subset of a creative's metadata.
type Metadata struct {
	// Objective is the campaign objective, empty when unknown.
	Objective string
}

// Metrics holds the performance numbers of a creative.
type Metrics struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
}

// NonClicks is the number of impressions that did not lead to a click.
func (m Metrics) NonClicks() float64 {
	return m.Impressions - m.Clicks
}
