package domain

import "context"

//go:generate mockgen -source=plan_repository.go -destination=plan_repository_mock.go -package=domain

// PlanRepository persists the one-plan-per-(user,date) aggregate.
type PlanRepository interface {
	// GetPlan returns the plan for the day, or ErrPlanNotFound.
	GetPlan(ctx context.Context, userID, date string) (*Plan, error)

	// SavePlan overwrites the day's plan document unconditionally. Used for
	// mutations that do not touch the replan quota (block completion).
	SavePlan(ctx context.Context, plan *Plan) error

	// SaveWithQuota runs build against the current plan for (userID, date)
	// and writes its result, all inside one transaction keyed by the plan
	// document, so the replan-quota check and the write cannot interleave
	// with a concurrent generation for the same user and date. build
	// receives nil when no plan exists yet; an error from build aborts the
	// transaction without writing.
	SaveWithQuota(ctx context.Context, userID, date string, build func(existing *Plan) (*Plan, error)) (*Plan, error)
}
