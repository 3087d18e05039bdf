package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
)

// Ensure PrometheusObserver implements the interface.
var _ driven.Observer = (*PrometheusObserver)(nil)

// DefaultNamespace prefixes every exported metric.
const DefaultNamespace = "creatives"

// PrometheusObserver exports pagination and decode metrics to Prometheus.
type PrometheusObserver struct {
	fetchDuration  prometheus.Histogram
	fetchErrors    prometheus.Counter
	loaded         prometheus.Counter
	decodeFailures *prometheus.CounterVec
}

// NewPrometheusObserver registers the fetch and decode metrics on reg.
// A nil reg uses the default registerer.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	fetchDuration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_duration_seconds",
		Help:      "Latency of creative page fetches.",
		Buckets:   prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}
	fetchErrors, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_errors_total",
		Help:      "Count of failed creative page fetches.",
	}))
	if err != nil {
		return nil, err
	}
	loaded, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "creatives_loaded_total",
		Help:      "Cumulative creatives appended to the dashboard store.",
	}))
	if err != nil {
		return nil, err
	}
	decodeFailures, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decode_failures_total",
		Help:      "Count of embedded payloads that failed to decode, by field.",
	}, []string{"field"}))
	if err != nil {
		return nil, err
	}

	return &PrometheusObserver{
		fetchDuration:  fetchDuration,
		fetchErrors:    fetchErrors,
		loaded:         loaded,
		decodeFailures: decodeFailures,
	}, nil
}

// register adds c to reg, returning the already registered collector
// when an identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// RecordFetch tracks fetch latency, failures and the number of creatives received.
func (o *PrometheusObserver) RecordFetch(duration time.Duration, creatives int, err error) {
	if o == nil {
		return
	}
	o.fetchDuration.Observe(duration.Seconds())
	if err != nil {
		o.fetchErrors.Inc()
		return
	}
	o.loaded.Add(float64(creatives))
}

// RecordDecodeFailure counts a payload that could not be decoded.
func (o *PrometheusObserver) RecordDecodeFailure(field string) {
	if o == nil {
		return
	}
	o.decodeFailures.WithLabelValues(field).Inc()
}
