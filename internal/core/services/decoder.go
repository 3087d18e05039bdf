package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/logger"
)

// Decoder parses the JSON text embedded in creative records.
//
// Metadata and labels are decoded defensively: malformed input degrades to an
// empty value and is reported to the logger and observer, never to the caller.
// Metrics are decoded strictly and malformed input is returned as an error.
type Decoder struct {
	observer driven.Observer
}

// NewDecoder creates a decoder reporting failures to observer.
// A nil observer discards telemetry.
func NewDecoder(observer driven.Observer) *Decoder {
	if observer == nil {
		observer = driven.NopObserver{}
	}
	return &Decoder{observer: observer}
}

// Metadata extracts the objective from a creative's metadata.
func (d *Decoder) Metadata(c domain.Creative) domain.Metadata {
	if c.MetadataRaw == "" {
		return domain.Metadata{}
	}

	var raw any
	if err := json.Unmarshal([]byte(c.MetadataRaw), &raw); err != nil {
		d.report("metadata", c.ID, err)
		return domain.Metadata{}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Metadata{}
	}
	objective, _ := obj["objective"].(string)
	return domain.Metadata{Objective: objective}
}

// Labels returns a creative's facet values in source order.
// The result is never nil.
func (d *Decoder) Labels(c domain.Creative) []string {
	if c.LabelsRaw == "" {
		return []string{}
	}

	var labels []string
	if err := json.Unmarshal([]byte(c.LabelsRaw), &labels); err != nil {
		d.report("labels", c.ID, err)
		return []string{}
	}
	if labels == nil {
		return []string{}
	}
	return labels
}

// Metrics decodes a creative's performance numbers.
// Missing fields decode to zero. Empty or malformed input returns an error
// wrapping domain.ErrMalformedMetrics.
func (d *Decoder) Metrics(c domain.Creative) (domain.Metrics, error) {
	if bytes.Equal(bytes.TrimSpace([]byte(c.MetricsRaw)), []byte("null")) {
		d.observer.RecordDecodeFailure("metrics")
		return domain.Metrics{}, fmt.Errorf("creative %s: %w: null payload", c.ID, domain.ErrMalformedMetrics)
	}

	var m domain.Metrics
	if err := json.Unmarshal([]byte(c.MetricsRaw), &m); err != nil {
		d.observer.RecordDecodeFailure("metrics")
		return domain.Metrics{}, fmt.Errorf("creative %s: %w: %w", c.ID, domain.ErrMalformedMetrics, err)
	}
	return m, nil
}

func (d *Decoder) report(field, id string, err error) {
	logger.Error("Error parsing %s for creative %s: %v", field, id, err)
	d.observer.RecordDecodeFailure(field)
}
