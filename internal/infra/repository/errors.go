package repository

import "errors"

var (
	ErrRedisConnection   = errors.New("redis connection error")
	ErrInvalidPlanData   = errors.New("invalid plan data")
	ErrInvalidBudgetData = errors.New("invalid budget data")
	ErrInvalidGoalData   = errors.New("invalid goal data")
	ErrInvalidUserData   = errors.New("invalid user data")
	ErrTxContention      = errors.New("transaction retries exhausted")
)
