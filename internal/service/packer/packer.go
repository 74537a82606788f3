// Package packer places ranked tasks into free windows.
package packer

import (
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
	"github.com/raigen-dev/plan-scheduling/internal/service/conflict"
)

// CandidateStep is the granularity at which candidate start times advance
// inside a window.
const CandidateStep = 15 * time.Minute

// Pack greedily assigns each task, in the given order, to the earliest
// candidate slot that passes every conflict check. Windows must already be
// in chronological order; Pack does not re-sort them. Existing blocks are
// prior commitments for the same day: candidates may not overlap them and
// their minutes count toward the daily load cap.
//
// Placement is single pass. A task is never split across windows and an
// accepted slot is never revisited. Tasks that fit nowhere are omitted from
// the result, which is not an error. Once the daily cap trips for a task
// the remaining windows are still scanned, but the monotonic cap trips in
// each of them too, so the task is effectively dropped.
func Pack(windows []domain.Interval, tasks []domain.Task, prefs domain.UserPrefs, existing []domain.Block) []domain.Block {
	committed := make([]domain.Block, 0, len(existing)+len(tasks))
	committed = append(committed, existing...)

	placed := make([]domain.Block, 0, len(tasks))
	for _, task := range tasks {
		effort := time.Duration(task.EffortMin) * time.Minute

		done := false
		for _, w := range windows {
			start := w.Start
			for !start.Add(effort).After(w.End) {
				end := start.Add(effort)

				if overlapsAny(committed, start, end) ||
					conflict.OverlapsQuietHours(start, end, prefs.QuietHours) ||
					conflict.ConflictsHardBlock(start, end, prefs.HardBlocks) {
					start = start.Add(CandidateStep)
					continue
				}
				if conflict.ExceedsDailyLoad(committed, task.EffortMin, prefs.MaxDayMinutes) {
					break
				}

				b := domain.NewBlock(task.Title, start, end, task.GoalID, task.Energy)
				placed = append(placed, b)
				committed = append(committed, b)
				done = true
				break
			}
			if done {
				break
			}
		}
	}
	return placed
}

func overlapsAny(blocks []domain.Block, start, end time.Time) bool {
	candidate := domain.Block{Start: start, End: end}
	for _, b := range blocks {
		if b.Overlaps(candidate) {
			return true
		}
	}
	return false
}
