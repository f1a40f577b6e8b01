// Package tracing starts spans that only ever extend an existing trace.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const scopePrefix = "season-insights/internal/"

// Tracer creates child spans for one instrumentation scope. When ctx carries
// no valid span the call is a no-op, so work reached from untraced paths such
// as health probes and startup never produces stray root spans.
type Tracer struct {
	tracer trace.Tracer
}

// New returns a Tracer for scope, a package path relative to internal/.
func New(scope string) Tracer {
	return Tracer{tracer: otel.Tracer(scopePrefix + scope)}
}

func (t Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return t.tracer.Start(ctx, name, opts...)
}
