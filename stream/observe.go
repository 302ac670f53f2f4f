package stream

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// Instrumentation stages are pass-through: they never change elements,
// never buffer, and preserve boundedness. Each records per-drive facts
// (element count, duration, outcome) when it sees exhaustion or an error.
// A short-circuiting terminal that stops pulling early never shows the
// stage an end-of-stream, so completion events may not fire for it.

// WithLogging logs the drive of s through log: start at debug, completion
// with element count and duration at debug, failures at error level.
func WithLogging[T any](s *Stream[T], log *logger.Logger, name string) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &loggingIter[T]{
			source: s.create(ctx),
			log: log.WithComponent("stream").WithFields(map[string]interface{}{
				logger.FieldStream: name,
			}),
		}
	})
}

// WithMetrics records the drive of s on m: element count, duration, and
// error count, attributed to the given stream name.
func WithMetrics[T any](s *Stream[T], m *observability.Metrics, name string) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &metricsIter[T]{source: s.create(ctx), metrics: m, name: name}
	})
}

// WithTracing wraps the drive of s in an OpenTelemetry span carrying the
// stream name and final element count.
func WithTracing[T any](s *Stream[T], name string) *Stream[T] {
	return derive(s, s.unbounded, func(ctx context.Context) Iterator[T] {
		return &tracingIter[T]{source: s.create(ctx), name: name}
	})
}

type loggingIter[T any] struct {
	source   Iterator[T]
	log      *logger.Logger
	started  bool
	finished bool
	start    time.Time
	elements int64
}

func (it *loggingIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.started {
		it.started = true
		it.start = time.Now()
		it.log.Debug("drive started")
	}

	val, ok, err := it.source.Next(ctx)
	if err != nil {
		if !it.finished {
			it.finished = true
			it.log.WithError(err).Error("drive failed", logger.Fields(
				logger.FieldElements, it.elements,
				logger.FieldDuration, time.Since(it.start).Milliseconds(),
			))
		}
		return val, false, err
	}
	if !ok {
		if !it.finished {
			it.finished = true
			it.log.Debug("drive completed", logger.Fields(
				logger.FieldElements, it.elements,
				logger.FieldDuration, time.Since(it.start).Milliseconds(),
			))
		}
		return val, false, nil
	}

	it.elements++
	return val, true, nil
}

type metricsIter[T any] struct {
	source   Iterator[T]
	metrics  *observability.Metrics
	name     string
	started  bool
	finished bool
	start    time.Time
	elements int64
}

func (it *metricsIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.started {
		it.started = true
		it.start = time.Now()
	}

	val, ok, err := it.source.Next(ctx)
	if err != nil {
		if !it.finished {
			it.finished = true
			it.metrics.RecordError(ctx, string(apperrors.GetCode(err)), it.name)
			it.metrics.RecordDrive(ctx, it.name, "drive", "error", it.elements, time.Since(it.start))
		}
		return val, false, err
	}
	if !ok {
		if !it.finished {
			it.finished = true
			it.metrics.RecordDrive(ctx, it.name, "drive", "ok", it.elements, time.Since(it.start))
		}
		return val, false, nil
	}

	it.elements++
	return val, true, nil
}

type tracingIter[T any] struct {
	source   Iterator[T]
	name     string
	span     trace.Span
	ended    bool
	elements int64
}

func (it *tracingIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.span == nil {
		_, it.span = observability.StartSpan(ctx, observability.SpanStreamDrive,
			trace.WithAttributes(attribute.String("stream", it.name)),
		)
	}

	val, ok, err := it.source.Next(ctx)
	if err != nil {
		if !it.ended {
			it.ended = true
			it.span.RecordError(err)
			it.span.SetAttributes(attribute.Int64("stream.elements", it.elements))
			it.span.End()
		}
		return val, false, err
	}
	if !ok {
		if !it.ended {
			it.ended = true
			it.span.SetAttributes(attribute.Int64("stream.elements", it.elements))
			it.span.End()
		}
		return val, false, nil
	}

	it.elements++
	return val, true, nil
}
