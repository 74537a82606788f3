package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const goalsKeyPrefix = "goals:"

type goalDocument struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	Title             string `json:"title"`
	Priority          int    `json:"priority"`
	EffortEstimateMin int    `json:"effort_estimate_min"`
	Status            string `json:"status"`
}

type goalRepository struct {
	client *redis.Client
}

func NewGoalRepository(client *redis.Client) domain.GoalRepository {
	return &goalRepository{
		client: client,
	}
}

func goalsKey(userID string) string {
	return goalsKeyPrefix + userID
}

func (r *goalRepository) ListActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	data, err := r.client.Get(ctx, goalsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var docs []goalDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, ErrInvalidGoalData
	}

	goals := make([]domain.Goal, 0, len(docs))
	for _, d := range docs {
		if domain.GoalStatus(d.Status) != domain.GoalStatusActive {
			continue
		}
		goals = append(goals, domain.Goal{
			ID:                d.ID,
			UserID:            d.UserID,
			Title:             d.Title,
			Priority:          d.Priority,
			EffortEstimateMin: d.EffortEstimateMin,
			Status:            domain.GoalStatus(d.Status),
		})
	}
	return goals, nil
}
