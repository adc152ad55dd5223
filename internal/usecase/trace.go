package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var rankingTracer = otel.Tracer("football-ranking/internal/usecase")

// startUsecaseSpan opens a child span named after a ranking operation, for
// example "usecase.AppState.SimulateMatch". Untraced contexts stay untraced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if strings.TrimSpace(name) == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	component, op, _ := strings.Cut(strings.TrimPrefix(name, "usecase."), ".")
	return rankingTracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("ranking.usecase.component", component),
		attribute.String("ranking.usecase.operation", op),
	))
}
