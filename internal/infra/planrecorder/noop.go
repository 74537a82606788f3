package planrecorder

import (
	"context"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordGeneration(_ context.Context, _ domain.PlanResultRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
