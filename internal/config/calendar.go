package config

import (
	"os"
	"time"
)

const (
	googleClientIDEnv     = "GOOGLE_CLIENT_ID"
	googleClientSecretEnv = "GOOGLE_CLIENT_SECRET"
	calendarTimeoutEnv    = "CALENDAR_TIMEOUT_SECONDS"

	defaultCalendarTimeout = 20 * time.Second
)

type CalendarConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	Timeout            time.Duration
}

func LoadCalendarConfig() *CalendarConfig {
	timeout := defaultCalendarTimeout
	if v := os.Getenv(calendarTimeoutEnv); v != "" {
		if parsed, err := time.ParseDuration(v + "s"); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return &CalendarConfig{
		GoogleClientID:     os.Getenv(googleClientIDEnv),
		GoogleClientSecret: os.Getenv(googleClientSecretEnv),
		Timeout:            timeout,
	}
}

// Enabled reports whether the Google OAuth app is configured; without it,
// free-window discovery requires caller-supplied windows.
func (c *CalendarConfig) Enabled() bool {
	return c != nil && c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
