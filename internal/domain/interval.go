package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open [Start, End) span of absolute time. It is used both
// for busy calendar intervals and for the free windows derived from them.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() {
		return fmt.Errorf("%w: missing start or end", ErrInvalidWindow)
	}
	if !i.Start.Before(i.End) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWindow,
			i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}
