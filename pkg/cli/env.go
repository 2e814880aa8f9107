package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/docbook"
	"github.com/platinummonkey/spoke-docbook/pkg/observability"
	"github.com/platinummonkey/spoke-docbook/pkg/schema"
	"github.com/platinummonkey/spoke-docbook/pkg/sink"
)

// addRenderFlags registers the flags shared by the rendering commands
func addRenderFlags(fs *flag.FlagSet) {
	fs.String("config", config.DefaultFileName, "Render options file (.properties, .yaml, .yml)")
	fs.String("out", "", "Output document path or s3://bucket/key (default: the output_name option)")
	fs.String("proto-path", ".", "Comma-separated import paths")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("metrics-file", "", "Write prometheus metrics to this textfile when done")
}

// renderFlags holds the parsed values of addRenderFlags
type renderFlags struct {
	configPath  string
	out         string
	importPaths []string
	logLevel    string
	metricsFile string
}

func readRenderFlags(fs *flag.FlagSet) renderFlags {
	return renderFlags{
		configPath:  fs.Lookup("config").Value.String(),
		out:         fs.Lookup("out").Value.String(),
		importPaths: splitList(fs.Lookup("proto-path").Value.String()),
		logLevel:    fs.Lookup("log-level").Value.String(),
		metricsFile: fs.Lookup("metrics-file").Value.String(),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// runEnv is the logger, options and telemetry of one command invocation
type runEnv struct {
	log      *logrus.Logger
	runtime  config.Runtime
	opts     *config.Options
	registry *prometheus.Registry
	metrics  *observability.Metrics
	tp       *sdktrace.TracerProvider
}

func newRunEnv(ctx context.Context, flags renderFlags) (*runEnv, error) {
	rt := config.LoadRuntime()
	if flags.logLevel != "" {
		rt.LogLevel = flags.logLevel
	}
	if flags.metricsFile != "" {
		rt.MetricsFile = flags.metricsFile
	}

	log := observability.NewLogger(rt.LogLevel, rt.LogFormat, nil)

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		Endpoint:       rt.OTelEndpoint,
		ServiceName:    rt.OTelServiceName,
		ServiceVersion: Version,
		Insecure:       rt.OTelInsecure,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	registry := prometheus.NewRegistry()

	return &runEnv{
		log:      log,
		runtime:  rt,
		opts:     config.Load(flags.configPath, log),
		registry: registry,
		metrics:  observability.NewMetrics(registry),
		tp:       tp,
	}, nil
}

func (e *runEnv) renderer() *docbook.Renderer {
	cfg := docbook.RendererConfig{
		Options: e.opts,
		Logger:  e.log,
		Metrics: e.metrics,
	}
	if e.tp != nil {
		cfg.TracerProvider = e.tp
	}
	return docbook.NewRenderer(cfg)
}

// close writes the metrics textfile and flushes traces
func (e *runEnv) close(ctx context.Context) {
	if e.runtime.MetricsFile != "" {
		if err := observability.WriteTextfile(e.runtime.MetricsFile, e.registry); err != nil {
			e.log.WithError(err).Warn("Failed to write metrics")
		}
	}
	_ = observability.ShutdownTracing(ctx, e.tp, e.log)
}

// openSink returns the sink for out: an S3 object for s3:// locations,
// otherwise a local file. An empty out uses the output_name option.
func (e *runEnv) openSink(ctx context.Context, out string) (sink.Sink, error) {
	if out == "" {
		out = e.opts.OutputName
	}

	if !strings.HasPrefix(out, "s3://") {
		return sink.NewFileSink(out, e.opts.InsertionPoint), nil
	}

	bucket, key, ok := sink.ParseS3URI(out)
	if !ok {
		return nil, fmt.Errorf("invalid s3 location: %s", out)
	}

	client, err := sink.NewS3Client(ctx, sink.S3Options{
		Region:       e.runtime.S3Region,
		Endpoint:     e.runtime.S3Endpoint,
		UsePathStyle: e.runtime.S3UsePathStyle,
		AccessKey:    e.runtime.S3AccessKey,
		SecretKey:    e.runtime.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}

	return sink.NewS3Sink(client, bucket, key, e.opts.InsertionPoint), nil
}

// render compiles files and renders them into a fresh document at out
func (e *runEnv) render(ctx context.Context, out string, importPaths, files []string) error {
	units, err := schema.NewLoader(importPaths, e.log).Load(ctx, files...)
	if err != nil {
		return err
	}

	s, err := e.openSink(ctx, out)
	if err != nil {
		return err
	}

	session := docbook.NewSession(s)
	e.log.WithFields(logrus.Fields{
		"session": session.ID(),
		"files":   len(files),
	}).Info("Rendering proto files")

	return e.renderer().GenerateAll(ctx, session, units)
}
