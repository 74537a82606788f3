// Package budget implements the monthly soft-limit gate over usage counters.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// Gate answers "would this increment stay under the soft limit" and applies
// increments. Limits are soft on purpose: callers log an overrun and carry
// on, because plan generation must never be blocked by billing.
type Gate struct {
	repo domain.BudgetRepository
	now  func() time.Time
}

func New(repo domain.BudgetRepository, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{repo: repo, now: now}
}

// WithinLimit reads the current month's record and reports whether adding
// inc to the counter keeps it at or under its limit. No mutation.
func (g *Gate) WithinLimit(ctx context.Context, userID string, counter domain.BudgetCounter, inc int) (bool, error) {
	rec, err := g.repo.GetBudget(ctx, userID, domain.MonthKey(g.now()))
	if err != nil {
		return false, fmt.Errorf("get budget: %w", err)
	}
	within := rec.Within(counter, inc)
	if !within {
		slog.WarnContext(ctx, "monthly soft budget exceeded",
			slog.String("user_id", userID),
			slog.String("counter", string(counter)),
			slog.Int("increment", inc))
	}
	return within, nil
}

// Charge applies the delta to the current month's record. Zero deltas are
// skipped without touching the store.
func (g *Gate) Charge(ctx context.Context, userID string, delta domain.BudgetDelta) error {
	if delta.IsZero() {
		return nil
	}
	if err := g.repo.IncrementBudget(ctx, userID, domain.MonthKey(g.now()), delta); err != nil {
		return fmt.Errorf("increment budget: %w", err)
	}
	return nil
}

// Current returns the month's record for display, created with defaults on
// first access.
func (g *Gate) Current(ctx context.Context, userID string) (*domain.BudgetRecord, error) {
	rec, err := g.repo.GetBudget(ctx, userID, domain.MonthKey(g.now()))
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return rec, nil
}
