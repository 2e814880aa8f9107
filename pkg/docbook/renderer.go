package docbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/observability"
	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

const tracerName = "spoke-docbook/docbook"

// RendererConfig configures a Renderer. Only Options is required.
type RendererConfig struct {
	Options        *config.Options
	Logger         *logrus.Logger
	Metrics        *observability.Metrics
	TracerProvider trace.TracerProvider
}

// Renderer turns schema units into DocBook text. It holds no per-run state
// and may be shared by any number of sessions.
type Renderer struct {
	opts    *config.Options
	log     *logrus.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// NewRenderer creates a renderer
func NewRenderer(cfg RendererConfig) *Renderer {
	opts := cfg.Options
	if opts == nil {
		opts = config.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Renderer{
		opts:    opts,
		log:     log,
		metrics: cfg.Metrics,
		tracer:  tp.Tracer(tracerName),
	}
}

// Options returns the render options
func (r *Renderer) Options() *config.Options {
	return r.opts
}

// RenderUnit renders one unit as a <sect1> and returns the text. The first
// call for a session also writes the template document through the session
// sink; a failure there is logged and does not affect the returned text.
func (r *Renderer) RenderUnit(ctx context.Context, session *Session, unit *schema.Unit) string {
	var b strings.Builder

	b.WriteString("<sect1><title> File: " + Escape(unit.Name) + "</title>\n")
	for _, msg := range unit.Messages {
		r.WalkMessage(&b, msg, "", 0)
	}
	r.WalkTopLevelEnums(&b, unit)
	b.WriteString("</sect1>\n")

	if session.claimTemplate() {
		r.writeTemplate(ctx, session)
	}

	return b.String()
}

func (r *Renderer) writeTemplate(ctx context.Context, session *Session) {
	err := session.Sink().WriteTemplate(ctx, r.TemplateDocument())
	r.metrics.RecordTemplate(err)

	entry := observability.WithTraceContext(ctx, r.log.WithField("session", session.ID()))
	if err != nil {
		entry.WithError(err).Warn("Failed to write template document")
		trace.SpanFromContext(ctx).AddEvent("template write failed",
			trace.WithAttributes(attribute.String("error", err.Error())),
		)
		return
	}
	entry.Debug("Wrote template document")
}

// Generate renders unit and appends it to the session output
func (r *Renderer) Generate(ctx context.Context, session *Session, unit *schema.Unit) error {
	ctx, span := r.tracer.Start(ctx, "docbook.RenderUnit",
		trace.WithAttributes(
			attribute.String("unit", unit.Name),
			attribute.String("package", unit.Package),
			attribute.String("session", session.ID()),
		),
	)
	defer span.End()

	start := time.Now()
	text := r.RenderUnit(ctx, session, unit)

	err := session.Sink().Append(ctx, text)
	r.metrics.RecordUnit(err, len(text), time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to append unit")
		return fmt.Errorf("failed to append unit %q: %w", unit.Name, err)
	}

	span.SetAttributes(attribute.Int("bytes", len(text)))
	span.SetStatus(codes.Ok, "")

	observability.WithTraceContext(ctx, r.log.WithFields(logrus.Fields{
		"session": session.ID(),
		"unit":    unit.Summary(),
		"bytes":   len(text),
	})).Info("Rendered unit")

	return nil
}

// GenerateAll runs Generate for each unit in order, stopping at the first error
func (r *Renderer) GenerateAll(ctx context.Context, session *Session, units []*schema.Unit) error {
	for _, unit := range units {
		if err := r.Generate(ctx, session, unit); err != nil {
			return err
		}
	}
	return nil
}
