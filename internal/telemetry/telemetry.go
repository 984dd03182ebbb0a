package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

func newOTELCollectorExporter(ctx context.Context, endpoint string) (trace.SpanExporter, error) {
	// Remove protocol prefix if present
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(endpoint),
	)
}

func newResource(serviceName, version string) *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
}

// NewProvider installs the global tracer provider and W3C trace context
// propagator. Spans are exported to the OTLP collector at endpoint; with an
// empty endpoint they are still created and propagated but not exported.
//
// Returns a teardown func
func NewProvider(ctx context.Context, serviceName, version, endpoint string) (func(context.Context) error, error) {
	opts := []trace.TracerProviderOption{trace.WithResource(newResource(serviceName, version))}

	if endpoint != "" {
		exp, err := newOTELCollectorExporter(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		opts = append(opts, trace.WithBatcher(exp))
	}

	tp := trace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
