package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the collectors exported on /metrics. Each server owns its
// registry so handlers can be created more than once in a process.
type Metrics struct {
	Registry           *prometheus.Registry
	Rendered           *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	RenderDuration     *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swml_documents_rendered_total",
				Help: "Documents rendered, by source and output format.",
			},
			[]string{"source", "format"},
		),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swml_validation_failures_total",
				Help: "Documents rejected by the validator.",
			},
			[]string{"source"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swml_render_duration_seconds",
				Help:    "Time spent building and rendering a document.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
	m.Registry.MustRegister(m.Rendered, m.ValidationFailures, m.RenderDuration)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
