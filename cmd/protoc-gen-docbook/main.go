// Command protoc-gen-docbook is a protoc plugin that renders the requested
// proto files into a single DocBook 5 document.
//
//	protoc --docbook_out=docs --docbook_opt=include_type_glossary=1 *.proto
//
// Options are read from docbook.properties in the working directory, then
// DOCBOOK_* environment variables, then the --docbook_opt parameter.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/platinummonkey/spoke-docbook/pkg/cli"
	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "protoc-gen-docbook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	rt := config.LoadRuntime()

	// stdout carries the plugin response
	log := observability.NewLogger(rt.LogLevel, rt.LogFormat, os.Stderr)

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		Endpoint:       rt.OTelEndpoint,
		ServiceName:    rt.OTelServiceName,
		ServiceVersion: cli.Version,
		Insecure:       rt.OTelInsecure,
	}, log)
	if err != nil {
		return err
	}
	defer observability.ShutdownTracing(ctx, tp, log)

	registry := prometheus.NewRegistry()
	plugin := &cli.Plugin{
		ConfigPath: config.DefaultFileName,
		Logger:     log,
		Metrics:    observability.NewMetrics(registry),
	}
	if tp != nil {
		plugin.TracerProvider = tp
	}

	if err := plugin.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return err
	}

	if rt.MetricsFile != "" {
		if err := observability.WriteTextfile(rt.MetricsFile, registry); err != nil {
			log.WithError(err).Warn("Failed to write metrics")
		}
	}
	return nil
}
