// Package rationale produces the short human-readable explanation attached
// to a generated plan.
package rationale

import (
	"context"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

//go:generate mockgen -source=rationale.go -destination=rationale_mock.go -package=rationale

// Generator writes a 2-3 sentence rationale for the given packing outcome.
// Failures are expected and absorbed by the caller with a fixed fallback
// string; a Generator never blocks plan persistence.
type Generator interface {
	Generate(ctx context.Context, tasks []domain.Task, prefs domain.UserPrefs, blocks []domain.Block) (string, error)
}
