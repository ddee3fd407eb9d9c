package funcz

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/adobaai/underbar/funcz"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)

	memoizeHits   = counter("underbar.memoize.hits", "Memoized calls answered from the cache.")
	memoizeMisses = counter("underbar.memoize.misses", "Memoized calls that ran the function.")
	throttleCalls = counter("underbar.throttle.calls", "Calls to throttled functions, by outcome.")
	delayCalls    = counter("underbar.delay.calls", "Calls deferred with Delay.")
)

const (
	outcomeLeading    = "leading"
	outcomeTrailing   = "trailing"
	outcomeSuppressed = "suppressed"
)

func counter(name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}
	return c
}

func countThrottle(outcome string) {
	throttleCalls.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

// traced runs fn inside a span named name.
// A panic marks the span as failed and is then re-raised.
func traced(ctx context.Context, name string, fn func()) {
	_, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("panic: %v", r))
			span.SetStatus(codes.Error, fmt.Sprint(r))
			panic(r)
		}
	}()

	fn()
}

// Trace creates a [Decorator] that runs every call inside an OpenTelemetry span.
func Trace[A, R any](name string) Decorator[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return func(args ...A) (res R) {
			traced(context.Background(), name, func() {
				res = next(args...)
			})
			return
		}
	}
}
