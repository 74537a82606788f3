package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	planMeterName = "plan.service"
)

type PlanMetrics struct {
	plansGenerated     metric.Int64Counter
	blocksPlaced       metric.Int64Counter
	tasksDropped       metric.Int64Counter
	quotaRejections    metric.Int64Counter
	generationDuration metric.Float64Histogram
	scheduledMinutes   metric.Int64Histogram
}

func NewPlanMetrics() (*PlanMetrics, error) {
	meter := otel.Meter(planMeterName)

	plansGenerated, err := meter.Int64Counter(
		"plan_generations_total",
		metric.WithDescription("Total number of plan generations"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	blocksPlaced, err := meter.Int64Counter(
		"plan_blocks_placed_total",
		metric.WithDescription("Total number of blocks placed into plans"),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	tasksDropped, err := meter.Int64Counter(
		"plan_tasks_dropped_total",
		metric.WithDescription("Total number of tasks that fit no window"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	quotaRejections, err := meter.Int64Counter(
		"plan_quota_rejections_total",
		metric.WithDescription("Generations rejected by the daily replan quota"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	generationDuration, err := meter.Float64Histogram(
		"plan_generation_duration_seconds",
		metric.WithDescription("End-to-end plan generation duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	scheduledMinutes, err := meter.Int64Histogram(
		"plan_scheduled_minutes",
		metric.WithDescription("Total minutes scheduled per generated plan"),
		metric.WithUnit("min"),
		metric.WithExplicitBucketBoundaries(
			15, 30, 60, 120, 180, 240, 300, 360, 480,
		),
	)
	if err != nil {
		return nil, err
	}

	return &PlanMetrics{
		plansGenerated:     plansGenerated,
		blocksPlaced:       blocksPlaced,
		tasksDropped:       tasksDropped,
		quotaRejections:    quotaRejections,
		generationDuration: generationDuration,
		scheduledMinutes:   scheduledMinutes,
	}, nil
}

func (m *PlanMetrics) RecordGeneration(ctx context.Context, planType string, blocksPlaced, tasksDropped, totalMinutes int) {
	m.plansGenerated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("plan_type", planType),
	))
	m.blocksPlaced.Add(ctx, int64(blocksPlaced), metric.WithAttributes(
		attribute.String("plan_type", planType),
	))
	if tasksDropped > 0 {
		m.tasksDropped.Add(ctx, int64(tasksDropped), metric.WithAttributes(
			attribute.String("plan_type", planType),
		))
	}
	m.scheduledMinutes.Record(ctx, int64(totalMinutes), metric.WithAttributes(
		attribute.String("plan_type", planType),
	))
}

func (m *PlanMetrics) RecordQuotaRejection(ctx context.Context) {
	m.quotaRejections.Add(ctx, 1)
}

func (m *PlanMetrics) RecordGenerationDuration(ctx context.Context, duration time.Duration) {
	m.generationDuration.Record(ctx, duration.Seconds())
}
