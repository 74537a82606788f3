package planrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("org", cfg.InfluxDBOrg),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordGeneration(ctx context.Context, record domain.PlanResultRecord) error {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"plan_result",
		map[string]string{
			"run_id":    runID,
			"user_id":   record.UserID,
			"plan_type": record.PlanType,
		},
		map[string]any{
			"date":          record.Date,
			"replan_count":  record.ReplanCount,
			"tasks_in":      record.TasksIn,
			"blocks_placed": record.BlocksPlaced,
			"tasks_dropped": record.TasksDropped,
			"total_minutes": record.TotalMinutes,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write plan result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
			slog.String("date", record.Date),
		)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
