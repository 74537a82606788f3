package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	defaultQuietStart    = 22 * 60 // 22:00
	defaultQuietEnd      = 7 * 60  // 07:00
	DefaultMaxDayMinutes = 300
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It marshals as "HH:MM" to match the stored preference documents.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// TimeOfDayFrom extracts the wall-clock component of an absolute timestamp,
// including seconds so that sub-minute instants still compare correctly.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeOfDay, data)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// QuietHours is a daily no-scheduling range. Start > End means the range
// wraps past midnight (e.g. 22:00-07:00).
type QuietHours struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether the wall-clock instant t falls inside the range.
func (q QuietHours) Contains(t TimeOfDay) bool {
	if q.Start <= q.End {
		return q.Start <= t && t < q.End
	}
	// wraps past midnight
	return t >= q.Start || t < q.End
}

// HardBlock is a recurring weekday-scoped range the user is never available
// for scheduling. Days uses ISO weekday numbering, 1=Monday through 7=Sunday.
type HardBlock struct {
	Label string    `json:"label"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
	Days  []int     `json:"days"`
}

func (h HardBlock) ActiveOn(weekday int) bool {
	for _, d := range h.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// ISOWeekday returns the ISO weekday (1=Monday..7=Sunday) of t.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

type UserPrefs struct {
	QuietHours    QuietHours  `json:"quiet_hours"`
	HardBlocks    []HardBlock `json:"hard_blocks,omitempty"`
	MaxDayMinutes int         `json:"max_day_min"`
}

// WithDefaults fills unset preference fields once, at construction time, so
// downstream reads never need per-site defaulting.
func (p UserPrefs) WithDefaults() UserPrefs {
	if p.QuietHours.Start == 0 && p.QuietHours.End == 0 {
		p.QuietHours = QuietHours{Start: defaultQuietStart, End: defaultQuietEnd}
	}
	if p.MaxDayMinutes <= 0 {
		p.MaxDayMinutes = DefaultMaxDayMinutes
	}
	return p
}
