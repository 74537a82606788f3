package domain

import "context"

//go:generate mockgen -source=goal_repository.go -destination=goal_repository_mock.go -package=domain

// GoalRepository reads the user's goal documents.
type GoalRepository interface {
	ListActiveGoals(ctx context.Context, userID string) ([]Goal, error)
}
