package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the application.
	ServiceName string
	// ServiceVersion is the version of the application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for stream observability.
type Metrics struct {
	driveTotal    metric.Int64Counter
	driveDuration metric.Float64Histogram
	elementTotal  metric.Int64Counter
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	driveTotal, err := meter.Int64Counter("stream.drive.total",
		metric.WithDescription("Total number of stream drives"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drive.total counter: %w", err)
	}

	driveDuration, err := meter.Float64Histogram("stream.drive.duration",
		metric.WithDescription("Duration of stream drives in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drive.duration histogram: %w", err)
	}

	elementTotal, err := meter.Int64Counter("stream.element.total",
		metric.WithDescription("Total number of elements pulled through instrumented streams"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.element.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("stream.error.total",
		metric.WithDescription("Total stream errors by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.error.total counter: %w", err)
	}

	return &Metrics{
		driveTotal:    driveTotal,
		driveDuration: driveDuration,
		elementTotal:  elementTotal,
		errorTotal:    errorTotal,
	}, nil
}

// RecordDrive records a completed stream drive.
func (m *Metrics) RecordDrive(ctx context.Context, stream, op, status string, elements int64, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("stream", stream),
		attribute.String("operation", op),
		attribute.String("status", status),
	)
	m.driveTotal.Add(ctx, 1, attrs)
	m.driveDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stream", stream),
		attribute.String("operation", op),
	))
	m.elementTotal.Add(ctx, elements, metric.WithAttributes(
		attribute.String("stream", stream),
	))
}

// RecordElements records elements pulled through an instrumented stage.
func (m *Metrics) RecordElements(ctx context.Context, stream string, n int64) {
	m.elementTotal.Add(ctx, n, metric.WithAttributes(
		attribute.String("stream", stream),
	))
}

// RecordError records an error by type and stream.
func (m *Metrics) RecordError(ctx context.Context, errType, stream string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("stream", stream),
	))
}
