// Package proposer derives a day's candidate tasks from the user's active
// goals when the caller supplies no explicit task list.
package proposer

import (
	"context"
	"fmt"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const (
	defaultGoalEffortMin = 120
	defaultGoalPriority  = 2

	// goals above this effort are split into two half-sized tasks so a
	// single block does not swallow the whole day
	splitThresholdMin = 120
)

type Proposer struct {
	goalRepo domain.GoalRepository
}

func New(goalRepo domain.GoalRepository) *Proposer {
	return &Proposer{goalRepo: goalRepo}
}

// Propose expands the user's active goals into tasks. Users with no active
// goals get a small fixed starter set so plan generation always has input.
func (p *Proposer) Propose(ctx context.Context, userID string) ([]domain.Task, error) {
	goals, err := p.goalRepo.ListActiveGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list active goals: %w", err)
	}

	if len(goals) == 0 {
		return defaultTasks(), nil
	}

	tasks := make([]domain.Task, 0, len(goals))
	for _, g := range goals {
		tasks = append(tasks, expandGoal(g)...)
	}
	return tasks, nil
}

func expandGoal(g domain.Goal) []domain.Task {
	effort := g.EffortEstimateMin
	if effort <= 0 {
		effort = defaultGoalEffortMin
	}
	priority := g.Priority
	if priority <= 0 {
		priority = defaultGoalPriority
	}

	energy := domain.EnergyMedium
	if priority >= 3 {
		energy = domain.EnergyHigh
	}

	base := domain.Task{
		GoalID:    g.ID,
		Energy:    energy,
		Urgency:   float64(priority),
		Impact:    float64(priority),
		EffortMin: effort,
		Title:     g.Title,
	}

	if effort <= splitThresholdMin {
		return []domain.Task{base}
	}

	first := base
	first.Title = g.Title + " - Part 1"
	first.EffortMin = effort / 2

	second := base
	second.Title = g.Title + " - Part 2"
	second.EffortMin = effort - first.EffortMin

	return []domain.Task{first, second}
}

func defaultTasks() []domain.Task {
	return []domain.Task{
		{Title: "Review and plan day", EffortMin: 30, Energy: domain.EnergyMedium, Urgency: 2, Impact: 2},
		{Title: "Process inbox", EffortMin: 45, Energy: domain.EnergyLow, Urgency: 2, Impact: 1},
	}
}
