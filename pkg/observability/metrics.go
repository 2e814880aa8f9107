package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the render metrics
type Metrics struct {
	UnitsRenderedTotal    *prometheus.CounterVec
	SectionsRenderedTotal *prometheus.CounterVec
	RenderDuration        prometheus.Histogram
	BytesAppendedTotal    prometheus.Counter
	TemplateWritesTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers the render metrics
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		UnitsRenderedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docbook_units_rendered_total",
				Help: "Total number of schema units rendered",
			},
			[]string{"status"},
		),
		SectionsRenderedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docbook_sections_rendered_total",
				Help: "Total number of message and enum sections rendered",
			},
			[]string{"kind"},
		),
		RenderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "docbook_render_duration_seconds",
				Help:    "Time spent rendering and appending one schema unit",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		BytesAppendedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docbook_bytes_appended_total",
				Help: "Total bytes appended to the output document",
			},
		),
		TemplateWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docbook_template_writes_total",
				Help: "Template document materializations",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.UnitsRenderedTotal,
		m.SectionsRenderedTotal,
		m.RenderDuration,
		m.BytesAppendedTotal,
		m.TemplateWritesTotal,
	)

	return m
}

// RecordUnit records the outcome of one render pass
func (m *Metrics) RecordUnit(err error, bytes int, duration time.Duration) {
	if m == nil {
		return
	}

	m.RenderDuration.Observe(duration.Seconds())
	if err != nil {
		m.UnitsRenderedTotal.WithLabelValues("error").Inc()
		return
	}
	m.UnitsRenderedTotal.WithLabelValues("success").Inc()
	m.BytesAppendedTotal.Add(float64(bytes))
}

// RecordSection counts a rendered section of the given kind ("message", "enum")
func (m *Metrics) RecordSection(kind string) {
	if m == nil {
		return
	}
	m.SectionsRenderedTotal.WithLabelValues(kind).Inc()
}

// RecordTemplate records a template document write
func (m *Metrics) RecordTemplate(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.TemplateWritesTotal.WithLabelValues("error").Inc()
		return
	}
	m.TemplateWritesTotal.WithLabelValues("success").Inc()
}

// WriteTextfile writes the gathered metrics in the node-exporter textfile format
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
