// Package observability wires the OpenTelemetry SDK and the process logger.
// Exporters are only started when OTEL_EXPORTER_OTLP_ENDPOINT is set; the
// service runs fine without a collector.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

type Config struct {
	ServiceName    string
	ServiceVersion string
	LogLevel       slog.Level
	SamplingRate   float64
}

type Resources struct {
	logger    *slog.Logger
	shutdowns []func(context.Context) error
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res := &Resources{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})),
	}

	if os.Getenv(otlpEndpointEnv) == "" {
		return res, nil
	}

	otelRes, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	sampling := cfg.SamplingRate
	if sampling <= 0 {
		sampling = 1.0
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(otelRes),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampling))),
	)
	otel.SetTracerProvider(tracerProvider)
	res.shutdowns = append(res.shutdowns, tracerProvider.Shutdown)

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(otelRes),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(30*time.Second),
		)),
	)
	otel.SetMeterProvider(meterProvider)
	res.shutdowns = append(res.shutdowns, meterProvider.Shutdown)

	return res, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error
	for _, shutdown := range r.shutdowns {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
