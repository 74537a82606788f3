package domain

import "context"

//go:generate mockgen -source=budget_repository.go -destination=budget_repository_mock.go -package=domain

// BudgetRepository persists per-(user, month) usage counters.
type BudgetRepository interface {
	// GetBudget returns the month's record, creating it with defaults on
	// first access.
	GetBudget(ctx context.Context, userID, month string) (*BudgetRecord, error)

	// IncrementBudget applies the delta inside a transactional
	// read-modify-write, creating the record with defaults if absent.
	IncrementBudget(ctx context.Context, userID, month string, delta BudgetDelta) error
}
