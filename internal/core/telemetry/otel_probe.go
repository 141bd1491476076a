package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pokereview/internal/core/port"
	"pokereview/pkg/metrics"
)

// OtelProbe emits spans and events through the globally configured
// tracer provider, and mirrors repository activity into the
// prometheus counters when a sink is attached.
type OtelProbe struct {
	tracer  trace.Tracer
	metrics *metrics.AppMetrics
}

func NewOtelProbe(serviceName string, appMetrics *metrics.AppMetrics) port.Telemetry {
	return &OtelProbe{tracer: otel.Tracer(serviceName), metrics: appMetrics}
}

func (p *OtelProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	spanAttrs := append([]attribute.KeyValue{
		attribute.String("db.operation", operation),
		attribute.String("db.entity", entity),
	}, attrs...)

	return p.tracer.Start(ctx, fmt.Sprintf("db.%s.%s", entity, operation), trace.WithAttributes(spanAttrs...))
}

func (p *OtelProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	span.SetAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.entity", entity),
		attribute.Int64("db.duration_ms", duration.Milliseconds()),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if p.metrics != nil {
		p.metrics.RecordDatabaseOperation(ctx, operation, entity)

		if err == nil {
			p.metrics.RecordEntityOperation(ctx, entity, operation)
		}
	}
}

func (p *OtelProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID int) {
	span := trace.SpanFromContext(ctx)

	span.AddEvent(event, trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.Int("entity.id", entityID),
	))
}

func (p *OtelProbe) RecordError(ctx context.Context, operation string, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", operation, err.Error()))
}
