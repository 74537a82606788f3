package config

import "os"

const (
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	geminiModelEnv  = "GEMINI_MODEL"
)

type RationaleConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

func LoadRationaleConfig() *RationaleConfig {
	return &RationaleConfig{
		GeminiAPIKey: os.Getenv(geminiAPIKeyEnv),
		GeminiModel:  os.Getenv(geminiModelEnv),
	}
}

// Enabled reports whether rationale generation has an API key; without one,
// plans carry the fixed fallback rationale.
func (c *RationaleConfig) Enabled() bool {
	return c != nil && c.GeminiAPIKey != ""
}
