package main

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/schoollibrary/lendingengine/library/engine"
	"github.com/schoollibrary/lendingengine/library/shared/shell/oteladapters"
)

const instrumentationName = "github.com/schoollibrary/lendingengine"

type telemetry struct {
	engine.Observability
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// newTelemetry installs global OpenTelemetry providers and returns collectors backed by them.
// The providers have no exporter registered: spans and measurements are recorded in-process only
// and are dropped on Shutdown. Exporting requires registering a span processor and a metric reader here.
func newTelemetry(ctx context.Context, logger *slog.Logger) (*telemetry, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", "library")),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res))

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &telemetry{
		Observability: engine.Observability{
			Logger:           logger,
			ContextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler()),
			Metrics:          oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
			Tracing:          oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
		},
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
	}, nil
}

func (t *telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(t.tracerProvider.Shutdown(ctx), t.meterProvider.Shutdown(ctx))
}
