// Package otel sets up OpenTelemetry tracing for the server.
package otel

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/nulzo/openai-mock"

// Config controls the tracer provider.
type Config struct {
	Enabled     bool
	ServiceName string
	// Writer receives exported spans; stdout when nil
	Writer io.Writer
}

// Tracing owns a tracer provider. The provider is not installed globally;
// the server hands it to otelgin and the handlers explicitly.
type Tracing struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

// New builds a stdout-exporting provider, or a no-op one when disabled.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Tracing, error) {
	if !cfg.Enabled {
		return &Tracing{
			provider: noop.NewTracerProvider(),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	opts := []stdouttrace.Option{stdouttrace.WithPrettyPrint()}
	if cfg.Writer != nil {
		opts = append(opts, stdouttrace.WithWriter(cfg.Writer))
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, err
	}

	// Create resource without merging with Default() to avoid schema conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcess(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	logger.Info("OpenTelemetry tracer initialized", zap.String("service", cfg.ServiceName))

	return &Tracing{provider: tp, shutdown: tp.Shutdown}, nil
}

// Provider is passed to otelgin.
func (t *Tracing) Provider() trace.TracerProvider { return t.provider }

// Tracer returns the tracer used for synthesis spans.
func (t *Tracing) Tracer() trace.Tracer { return t.provider.Tracer(instrumentationName) }

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error { return t.shutdown(ctx) }
