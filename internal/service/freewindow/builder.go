package freewindow

import (
	"sort"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// MinUsableSlot is the shortest gap worth offering to the packer; anything
// smaller cannot hold a task at the 15-minute scheduling granularity.
const MinUsableSlot = 15 * time.Minute

// Build converts a day's busy intervals into the complement set of free
// windows within [dayStart, dayEnd). Busy intervals may arrive unsorted,
// overlapping, or only partially inside the horizon. Pure function; running
// it twice on the same input yields the same output.
func Build(dayStart, dayEnd time.Time, busy []domain.Interval) []domain.Interval {
	clamped := make([]domain.Interval, 0, len(busy))
	for _, b := range busy {
		s, e := b.Start, b.End
		if s.Before(dayStart) {
			s = dayStart
		}
		if e.After(dayEnd) {
			e = dayEnd
		}
		if e.After(s) {
			clamped = append(clamped, domain.Interval{Start: s, End: e})
		}
	}

	sort.Slice(clamped, func(i, j int) bool {
		return clamped[i].Start.Before(clamped[j].Start)
	})

	free := make([]domain.Interval, 0, len(clamped)+1)
	cursor := dayStart
	for _, b := range clamped {
		if b.Start.After(cursor) {
			free = append(free, domain.Interval{Start: cursor, End: b.Start})
		}
		// advancing to the max end merges overlapping and adjacent busy
		// intervals without a separate merge pass
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(dayEnd) {
		free = append(free, domain.Interval{Start: cursor, End: dayEnd})
	}

	usable := free[:0]
	for _, w := range free {
		if w.Duration() >= MinUsableSlot {
			usable = append(usable, w)
		}
	}
	return usable
}
