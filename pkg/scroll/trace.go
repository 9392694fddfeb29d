package scroll

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/go-drift/snapscroll/pkg/scroll"

// Settle outcomes recorded on the scroll.settle span.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeDisposed  = "disposed"
)

// Option configures a [Stack].
type Option func(*Stack)

// WithTracer records settle spans on t instead of the global tracer provider.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Stack) {
		s.tracer = t
	}
}

func defaultTracer() oteltrace.Tracer {
	return otel.Tracer(tracerName)
}

// startSpan opens the span of a settle. Timestamps come from the scheduler
// clock so spans line up with frame times.
func (s *Stack) startSpan(plan Plan) {
	_, span := s.tracer.Start(
		context.Background(),
		"scroll.settle",
		oteltrace.WithTimestamp(s.scheduler.Now()),
		oteltrace.WithAttributes(
			attribute.String("scroll.stack", s.id),
			attribute.String("scroll.guide.x", plan.GuideX),
			attribute.String("scroll.guide.y", plan.GuideY),
			attribute.Float64("scroll.from.x", plan.From.X),
			attribute.Float64("scroll.from.y", plan.From.Y),
			attribute.Float64("scroll.to.x", plan.To.X),
			attribute.Float64("scroll.to.y", plan.To.Y),
			attribute.Int64("scroll.duration_ms", plan.Duration.Milliseconds()),
		),
	)
	s.span = span
}

func (s *Stack) endSpan(outcome string) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(attribute.String("scroll.outcome", outcome))
	s.span.End(oteltrace.WithTimestamp(s.scheduler.Now()))
	s.span = nil
}
