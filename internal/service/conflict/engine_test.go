package conflict

import (
	"testing"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

// 2025-01-06 is a Monday.
var day = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestOverlapsQuietHours(t *testing.T) {
	quiet := domain.QuietHours{
		Start: domain.NewTimeOfDay(22, 0),
		End:   domain.NewTimeOfDay(7, 0),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside daytime", at(10, 0), at(11, 0), false},
		{"starts inside quiet hours", at(22, 30), at(23, 30), true},
		{"ends inside quiet hours", at(21, 30), at(22, 30), true},
		{"ends exactly at quiet start", at(21, 0), at(22, 0), false},
		{"starts exactly at quiet end", at(7, 0), at(8, 0), false},
		{"early morning inside wrap", at(5, 0), at(6, 0), true},
		{"crosses midnight fully in quiet", at(23, 0), at(25, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapsQuietHours(tt.start, tt.end, quiet); got != tt.want {
				t.Errorf("OverlapsQuietHours: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsQuietHoursSameDayWindow(t *testing.T) {
	quiet := domain.QuietHours{
		Start: domain.NewTimeOfDay(12, 0),
		End:   domain.NewTimeOfDay(13, 0),
	}

	if !OverlapsQuietHours(at(12, 30), at(12, 45), quiet) {
		t.Error("block inside a same-day quiet window should overlap")
	}
	if OverlapsQuietHours(at(13, 0), at(14, 0), quiet) {
		t.Error("block starting at quiet end should not overlap")
	}
}

func TestConflictsHardBlock(t *testing.T) {
	school := domain.HardBlock{
		Label: "school run",
		Start: domain.NewTimeOfDay(15, 0),
		End:   domain.NewTimeOfDay(16, 0),
		Days:  []int{1, 2, 3, 4, 5},
	}
	weekendOnly := domain.HardBlock{
		Label: "long ride",
		Start: domain.NewTimeOfDay(9, 0),
		End:   domain.NewTimeOfDay(12, 0),
		Days:  []int{6, 7},
	}

	tests := []struct {
		name       string
		start, end time.Time
		blocks     []domain.HardBlock
		want       bool
	}{
		{"no hard blocks", at(15, 0), at(16, 0), nil, false},
		{"inside active block", at(15, 15), at(15, 45), []domain.HardBlock{school}, true},
		{"overlaps block start", at(14, 30), at(15, 30), []domain.HardBlock{school}, true},
		{"ends exactly at block start", at(14, 0), at(15, 0), []domain.HardBlock{school}, false},
		{"starts exactly at block end", at(16, 0), at(17, 0), []domain.HardBlock{school}, false},
		{"block not active on monday", at(10, 0), at(11, 0), []domain.HardBlock{weekendOnly}, false},
		{"second block matches", at(15, 30), at(16, 30), []domain.HardBlock{weekendOnly, school}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConflictsHardBlock(tt.start, tt.end, tt.blocks); got != tt.want {
				t.Errorf("ConflictsHardBlock: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConflictsHardBlockOnWeekend(t *testing.T) {
	// 2025-01-11 is a Saturday, ISO weekday 6.
	saturday := time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC)
	ride := domain.HardBlock{
		Start: domain.NewTimeOfDay(9, 0),
		End:   domain.NewTimeOfDay(12, 0),
		Days:  []int{6, 7},
	}

	if !ConflictsHardBlock(saturday, saturday.Add(time.Hour), []domain.HardBlock{ride}) {
		t.Error("expected conflict with weekend hard block on saturday")
	}
}

func TestExceedsDailyLoad(t *testing.T) {
	blocks := []domain.Block{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(11, 0), End: at(12, 30)},
	}

	tests := []struct {
		name             string
		candidateMinutes int
		maxDayMinutes    int
		want             bool
	}{
		{"well under cap", 30, 300, false},
		{"exactly at cap", 150, 300, false},
		{"one minute over", 151, 300, true},
		{"zero cap rejects everything", 15, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExceedsDailyLoad(blocks, tt.candidateMinutes, tt.maxDayMinutes); got != tt.want {
				t.Errorf("ExceedsDailyLoad: got %v, want %v", got, tt.want)
			}
		})
	}
}
