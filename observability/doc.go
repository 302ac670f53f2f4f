// Package observability provides OpenTelemetry tracing and metrics
// integration for stream pipelines.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "stream.drive")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-app"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-app"))
//	metrics.RecordDrive(ctx, "events", "collect", "ok", 128, duration)
//
// Exporters are OTLP over HTTP; both providers register themselves globally.
package observability
