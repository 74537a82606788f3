package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const planTracerName = "github.com/raigen-dev/plan-scheduling/internal/service/plan"

func PlanTracer() trace.Tracer {
	return otel.Tracer(planTracerName)
}

func StartGenerationSpan(ctx context.Context, userID, date string) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.generate",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("plan.date", date),
		),
	)
}

func StartPackingSpan(ctx context.Context, taskCount, windowCount int) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.pack",
		trace.WithAttributes(
			attribute.Int("pack.task_count", taskCount),
			attribute.Int("pack.window_count", windowCount),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return PlanTracer().Start(ctx, "plan.external_api."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordGenerationResult(span trace.Span, planType string, blocksPlaced, tasksDropped int, err error) {
	span.SetAttributes(
		attribute.String("plan.type", planType),
		attribute.Int("plan.blocks_placed", blocksPlaced),
		attribute.Int("plan.tasks_dropped", tasksDropped),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
