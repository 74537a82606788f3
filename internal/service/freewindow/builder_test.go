package freewindow

import (
	"testing"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

var day = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(sh, sm, eh, em int) domain.Interval {
	return domain.Interval{Start: at(sh, sm), End: at(eh, em)}
}

func TestBuild(t *testing.T) {
	dayStart := at(8, 0)
	dayEnd := at(18, 0)

	tests := []struct {
		name string
		busy []domain.Interval
		want []domain.Interval
	}{
		{
			name: "no busy intervals yields whole day",
			busy: nil,
			want: []domain.Interval{iv(8, 0, 18, 0)},
		},
		{
			name: "single meeting splits the day",
			busy: []domain.Interval{iv(10, 0, 11, 0)},
			want: []domain.Interval{iv(8, 0, 10, 0), iv(11, 0, 18, 0)},
		},
		{
			name: "unsorted overlapping intervals are merged",
			busy: []domain.Interval{iv(13, 0, 14, 30), iv(9, 0, 10, 0), iv(13, 30, 15, 0)},
			want: []domain.Interval{iv(8, 0, 9, 0), iv(10, 0, 13, 0), iv(15, 0, 18, 0)},
		},
		{
			name: "adjacent intervals leave no gap",
			busy: []domain.Interval{iv(9, 0, 10, 0), iv(10, 0, 11, 0)},
			want: []domain.Interval{iv(8, 0, 9, 0), iv(11, 0, 18, 0)},
		},
		{
			name: "intervals outside the horizon are clamped",
			busy: []domain.Interval{iv(6, 0, 9, 0), iv(17, 0, 20, 0)},
			want: []domain.Interval{iv(9, 0, 17, 0)},
		},
		{
			name: "interval fully outside the horizon is dropped",
			busy: []domain.Interval{iv(19, 0, 20, 0)},
			want: []domain.Interval{iv(8, 0, 18, 0)},
		},
		{
			name: "gaps under fifteen minutes are discarded",
			busy: []domain.Interval{iv(8, 10, 12, 0), iv(12, 10, 17, 50)},
			want: nil,
		},
		{
			name: "exactly fifteen minute gap survives",
			busy: []domain.Interval{iv(8, 0, 12, 0), iv(12, 15, 18, 0)},
			want: []domain.Interval{iv(12, 0, 12, 15)},
		},
		{
			name: "busy covers the whole day",
			busy: []domain.Interval{iv(8, 0, 18, 0)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(dayStart, dayEnd, tt.busy)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("window[%d]: got %v-%v, want %v-%v",
						i, got[i].Start, got[i].End, tt.want[i].Start, tt.want[i].End)
				}
			}
		})
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	dayStart := at(0, 0)
	dayEnd := at(23, 59)
	busy := []domain.Interval{
		iv(14, 0, 15, 0), iv(9, 30, 10, 45), iv(9, 0, 10, 0), iv(22, 0, 23, 0),
	}

	first := Build(dayStart, dayEnd, busy)
	second := Build(dayStart, dayEnd, busy)

	if len(first) != len(second) {
		t.Fatalf("window counts differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("window[%d] differs between runs", i)
		}
	}
}

func TestBuildOutputOrderedAndDisjoint(t *testing.T) {
	dayStart := at(7, 0)
	dayEnd := at(22, 0)
	busy := []domain.Interval{
		iv(12, 0, 13, 0), iv(8, 0, 9, 0), iv(8, 30, 9, 30), iv(18, 0, 18, 5),
	}

	windows := Build(dayStart, dayEnd, busy)
	for i := 1; i < len(windows); i++ {
		if !windows[i-1].End.Before(windows[i].Start) && !windows[i-1].End.Equal(windows[i].Start) {
			t.Errorf("windows %d and %d are out of order or overlap", i-1, i)
		}
	}
	for i, w := range windows {
		if !w.Start.Before(w.End) {
			t.Errorf("window[%d] is empty or inverted: %v", i, w)
		}
	}
}
