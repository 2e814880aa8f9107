package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/docbook"
	"github.com/platinummonkey/spoke-docbook/pkg/observability"
	"github.com/platinummonkey/spoke-docbook/pkg/schema"
	"github.com/platinummonkey/spoke-docbook/pkg/sink"
)

// Plugin implements the protoc plugin protocol. Options come from ConfigPath
// and the environment, then the --docbook_opt parameter string.
type Plugin struct {
	ConfigPath     string
	Logger         *logrus.Logger
	Metrics        *observability.Metrics
	TracerProvider trace.TracerProvider
}

// Run reads a CodeGeneratorRequest from in and writes the response to out.
// Render failures are reported to protoc inside the response; only protocol
// errors are returned.
func (p *Plugin) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}

	resp, err := proto.Marshal(p.Generate(ctx, req))
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	if _, err := out.Write(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Generate renders every file protoc asked for into one insertion-point
// response
func (p *Plugin) Generate(ctx context.Context, req *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	log := p.Logger
	if log == nil {
		log = logrus.New()
	}
	configPath := p.ConfigPath
	if configPath == "" {
		configPath = config.DefaultFileName
	}

	opts := config.LoadWithOverrides(configPath, config.ParseParameter(req.GetParameter()), log)

	units, err := schema.UnitsFromRequest(req)
	if err != nil {
		log.WithError(err).Error("Invalid generator request")
		return sink.ErrorResponse(err)
	}

	renderer := docbook.NewRenderer(docbook.RendererConfig{
		Options:        opts,
		Logger:         log,
		Metrics:        p.Metrics,
		TracerProvider: p.TracerProvider,
	})

	ps := sink.NewPluginSink(opts.OutputName, opts.InsertionPoint)
	if err := renderer.GenerateAll(ctx, docbook.NewSession(ps), units); err != nil {
		log.WithError(err).Error("Render failed")
		return sink.ErrorResponse(err)
	}

	return ps.Response()
}
