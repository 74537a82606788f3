package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const defaultTimeout = 20 * time.Second

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// GoogleSource queries the Google Calendar free/busy endpoint for the
// user's primary calendar, exchanging the stored refresh token for an
// access token per call.
type GoogleSource struct {
	oauth   oauth2.Config
	timeout time.Duration
}

func NewGoogleSource(cfg GoogleConfig) *GoogleSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GoogleSource{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarReadonlyScope},
		},
		timeout: timeout,
	}
}

func (g *GoogleSource) BusyIntervals(ctx context.Context, refreshToken string, start, end time.Time) ([]domain.Interval, error) {
	if refreshToken == "" {
		return nil, domain.ErrCalendarNotLinked
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ts := g.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}

	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: "primary"}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("query free/busy: %w", err)
	}

	primary, ok := resp.Calendars["primary"]
	if !ok {
		return nil, nil
	}

	busy := make([]domain.Interval, 0, len(primary.Busy))
	for _, p := range primary.Busy {
		s, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("parse busy start %q: %w", p.Start, err)
		}
		e, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("parse busy end %q: %w", p.End, err)
		}
		busy = append(busy, domain.Interval{Start: s, End: e})
	}
	return busy, nil
}
