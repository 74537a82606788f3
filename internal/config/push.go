package config

import (
	"os"
	"time"
)

const (
	pushDisabledEnv = "PUSH_DISABLED"
	pushEndpointEnv = "EXPO_PUSH_URL"
	pushTimeoutEnv  = "PUSH_TIMEOUT_SECONDS"

	defaultPushTimeout = 20 * time.Second
)

type PushConfig struct {
	Disabled bool
	Endpoint string
	Timeout  time.Duration
}

func LoadPushConfig() *PushConfig {
	timeout := defaultPushTimeout
	if v := os.Getenv(pushTimeoutEnv); v != "" {
		if parsed, err := time.ParseDuration(v + "s"); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return &PushConfig{
		Disabled: os.Getenv(pushDisabledEnv) == "true",
		Endpoint: os.Getenv(pushEndpointEnv),
		Timeout:  timeout,
	}
}
