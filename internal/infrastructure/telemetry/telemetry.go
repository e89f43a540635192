package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mrops-br/storefront-api/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry holds all OpenTelemetry components
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Registry       *prometheus.Registry
	Logger         *slog.Logger
}

// NewTelemetry initializes all OpenTelemetry components
func NewTelemetry(cfg *config.Config) (*Telemetry, error) {
	ctx := context.Background()
	logger := NewLogger(os.Stdout, cfg)

	logger.Info("Initializing OpenTelemetry",
		slog.String("endpoint", cfg.OTLP.Endpoint),
		slog.String("service_name", cfg.OTLP.ServiceName),
		slog.Bool("export_enabled", cfg.OTLP.Enabled),
	)

	res, err := newResource(ctx, &cfg.OTLP)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, &cfg.OTLP, res)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
	}
	otel.SetTracerProvider(tp)
	logger.Info("Tracer provider initialized successfully")

	reg := newPrometheusRegistry()
	mp, err := initMeterProvider(ctx, &cfg.OTLP, res, reg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
	}
	otel.SetMeterProvider(mp)
	logger.Info("Meter provider initialized successfully")

	return &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Registry:       reg,
		Logger:         logger,
	}, nil
}

// NewNoOpTelemetry creates a telemetry instance that neither exports nor
// touches the global providers. Logs go to w.
func NewNoOpTelemetry(w io.Writer, cfg *config.Config) *Telemetry {
	return &Telemetry{
		TracerProvider: sdktrace.NewTracerProvider(),
		MeterProvider:  metric.NewMeterProvider(),
		Registry:       prometheus.NewRegistry(),
		Logger:         NewLogger(w, cfg),
	}
}

// Shutdown flushes and stops the tracer and meter providers. Both are shut
// down even when the first fails; their errors are joined.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.Logger.Info("Shutting down OpenTelemetry")

	tracerErr := t.TracerProvider.Shutdown(ctx)
	if tracerErr != nil {
		t.Logger.Error("Failed to shutdown tracer provider", slog.String("error", tracerErr.Error()))
		tracerErr = fmt.Errorf("tracer provider: %w", tracerErr)
	}

	meterErr := t.MeterProvider.Shutdown(ctx)
	if meterErr != nil {
		t.Logger.Error("Failed to shutdown meter provider", slog.String("error", meterErr.Error()))
		meterErr = fmt.Errorf("meter provider: %w", meterErr)
	}

	if err := errors.Join(tracerErr, meterErr); err != nil {
		return err
	}

	t.Logger.Info("OpenTelemetry shutdown successfully")
	return nil
}
