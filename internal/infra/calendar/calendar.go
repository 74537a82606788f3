// Package calendar fetches a user's busy intervals from an external
// calendar provider.
package calendar

import (
	"context"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

//go:generate mockgen -source=calendar.go -destination=calendar_mock.go -package=calendar

// Source lists the busy intervals on the user's primary calendar between
// start and end. It returns domain.ErrCalendarNotLinked when the user has
// no calendar credential.
type Source interface {
	BusyIntervals(ctx context.Context, refreshToken string, start, end time.Time) ([]domain.Interval, error)
}
