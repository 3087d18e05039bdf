// Package metrics exports dashboard telemetry to Prometheus.
//
// PrometheusObserver implements driven.Observer; Server exposes the
// registry on /metrics for scraping.
package metrics
