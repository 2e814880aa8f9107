// Package observability provides logging, Prometheus metrics, and OpenTelemetry
// tracing for render runs.
//
// # Logging
//
//	log := observability.NewLogger("info", "text", os.Stderr)
//	log.WithField("file", unit.Name).Info("Rendered unit")
//
// Protoc plugins must keep stdout free for the response, so the plugin entry
// point always logs to stderr.
//
// # Prometheus Metrics
//
// Metrics are registered on a caller-owned registry. Short-lived runs export
// them through the node-exporter textfile collector:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	...
//	observability.WriteTextfile("/var/lib/node_exporter/docbook.prom", registry)
//
// # Tracing
//
// InitTracing installs an OTLP/gRPC tracer provider when an endpoint is set.
// Every render pass opens a docbook.RenderUnit span.
package observability
