package plan

import (
	"context"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// GenerateRequest carries one plan-generation call. Date is an optional
// YYYY-MM-DD key, defaulting to today. Empty Tasks triggers the goal
// proposer; empty FreeWindows triggers calendar discovery.
type GenerateRequest struct {
	UserID      string
	Date        string
	Tasks       []domain.Task
	FreeWindows []domain.Interval
	Prefs       domain.UserPrefs
}

// TaskProposer expands the user's goals into candidate tasks when the
// caller supplies none.
type TaskProposer interface {
	Propose(ctx context.Context, userID string) ([]domain.Task, error)
}
