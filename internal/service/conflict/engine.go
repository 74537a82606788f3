// Package conflict holds the pure predicates the packer consults before
// accepting a candidate block. None of them perform IO.
package conflict

import (
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// OverlapsQuietHours reports whether the candidate [start, end) touches the
// user's quiet hours. The contract is a two-point check: the start instant
// and the instant one second before the end. Very short quiet windows are
// therefore treated approximately; the check exists to catch both edges of
// the candidate, not to scan the whole interval.
func OverlapsQuietHours(start, end time.Time, quiet domain.QuietHours) bool {
	return quiet.Contains(domain.TimeOfDayFrom(start)) ||
		quiet.Contains(domain.TimeOfDayFrom(end.Add(-time.Second)))
}

// ConflictsHardBlock reports whether the candidate collides with any hard
// block active on the candidate's weekday. Only time-of-day is compared;
// candidates spanning multiple days are out of scope.
func ConflictsHardBlock(start, end time.Time, hardBlocks []domain.HardBlock) bool {
	weekday := domain.ISOWeekday(start)
	startTOD := domain.TimeOfDayFrom(start)
	endTOD := domain.TimeOfDayFrom(end)

	for _, hb := range hardBlocks {
		if !hb.ActiveOn(weekday) {
			continue
		}
		if !(endTOD <= hb.Start || startTOD >= hb.End) {
			return true
		}
	}
	return false
}

// ExceedsDailyLoad reports whether adding candidateMinutes to the day's
// already-scheduled blocks would push the total past maxDayMinutes. All
// existing blocks are assumed to lie on the same calendar day.
func ExceedsDailyLoad(existing []domain.Block, candidateMinutes, maxDayMinutes int) bool {
	total := 0
	for _, b := range existing {
		total += b.DurationMinutes()
	}
	return total+candidateMinutes > maxDayMinutes
}
