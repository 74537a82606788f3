package domain

import "time"

// Default monthly limits, applied lazily when a budget record is first read.
const (
	DefaultSMSLimit      = 2
	DefaultLLMLimitCents = 1500
	DefaultVoiceLimitMin = 30
)

// BudgetRecord tracks a user's usage counters for one calendar month. Each
// counter is a soft limit: exceeding it is logged, never enforced. Counters
// only ever increase.
type BudgetRecord struct {
	SMSUsed       int `json:"sms_used"`
	SMSLimit      int `json:"sms_limit"`
	LLMCents      int `json:"llm_cents"`
	LLMLimitCents int `json:"llm_limit_cents"`
	VoiceMin      int `json:"voice_min"`
	VoiceLimitMin int `json:"voice_limit_min"`
}

func DefaultBudget() BudgetRecord {
	return BudgetRecord{
		SMSLimit:      DefaultSMSLimit,
		LLMLimitCents: DefaultLLMLimitCents,
		VoiceLimitMin: DefaultVoiceLimitMin,
	}
}

// BudgetCounter names one of the three counter/limit pairs.
type BudgetCounter string

const (
	CounterSMS   BudgetCounter = "sms"
	CounterLLM   BudgetCounter = "llm"
	CounterVoice BudgetCounter = "voice"
)

// Within reports whether adding inc to the counter stays at or under its
// limit. It performs no mutation.
func (b BudgetRecord) Within(counter BudgetCounter, inc int) bool {
	switch counter {
	case CounterSMS:
		return b.SMSUsed+inc <= b.SMSLimit
	case CounterLLM:
		return b.LLMCents+inc <= b.LLMLimitCents
	case CounterVoice:
		return b.VoiceMin+inc <= b.VoiceLimitMin
	}
	return true
}

// BudgetDelta is a set of counter increments applied in one transactional
// read-modify-write. Deltas are never negative.
type BudgetDelta struct {
	SMS      int
	LLMCents int
	VoiceMin int
}

func (d BudgetDelta) IsZero() bool {
	return d.SMS == 0 && d.LLMCents == 0 && d.VoiceMin == 0
}

// MonthKey is the calendar-month document key, derived in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
