package domain

import (
	"context"
	"time"
)

// PlanResultRecord captures the outcome of one plan generation for offline
// analysis of packing behavior.
type PlanResultRecord struct {
	RunID        string
	UserID       string
	Date         string
	PlanType     string
	ReplanCount  int
	TasksIn      int
	BlocksPlaced int
	TasksDropped int
	TotalMinutes int
	GeneratedAt  time.Time
}

type PlanResultRecorder interface {
	RecordGeneration(ctx context.Context, record PlanResultRecord) error
	Close() error
}
