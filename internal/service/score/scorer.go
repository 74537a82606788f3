// Package score ranks tasks for the packer.
package score

import (
	"sort"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// minEffortMin floors the effort divisor so trivial tasks cannot dominate
// the ranking on effort alone.
const minEffortMin = 15

// Score computes a task's priority as urgency times impact divided by
// effort, with effort floored at fifteen minutes.
func Score(t domain.Task) float64 {
	effort := t.EffortMin
	if effort < minEffortMin {
		effort = minEffortMin
	}
	return t.Urgency * t.Impact / float64(effort)
}

// Rank returns the tasks ordered by descending score. The sort is stable,
// so equally scored tasks keep their input order. The input slice is not
// modified.
func Rank(tasks []domain.Task) []domain.Task {
	ranked := make([]domain.Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i]) > Score(ranked[j])
	})
	return ranked
}
