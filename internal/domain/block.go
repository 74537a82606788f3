package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"
)

const blockIDLength = 10

// Block is one scheduled, time-bounded unit of work derived from a task.
// End minus Start always equals the originating task's effort.
type Block struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	GoalID    string    `json:"goal_id,omitempty"`
	Energy    Energy    `json:"energy,omitempty"`
	Locked    bool      `json:"locked"`
	Completed bool      `json:"completed"`
}

func NewBlock(title string, start, end time.Time, goalID string, energy Energy) Block {
	return Block{
		ID:     BlockID(title, start, end, goalID),
		Title:  title,
		Start:  start,
		End:    end,
		GoalID: goalID,
		Energy: energy,
	}
}

// BlockID derives a stable identifier from the block's content so clients can
// reference a block without depending on store-assigned keys. Start and end
// feed the digest, so ids are stable within one generation only; a replan
// generally produces fresh ids for the same task.
func BlockID(title string, start, end time.Time, goalID string) string {
	seed, _ := json.Marshal([]any{title, CanonicalTime(start), CanonicalTime(end), goalID})
	sum := sha1.Sum(seed)
	return hex.EncodeToString(sum[:])[:blockIDLength]
}

// CanonicalTime renders a timestamp in the ISO-8601 UTC form used for block
// identity and persistence: second precision, trailing Z.
func CanonicalTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}

func (b Block) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

func (b Block) Overlaps(other Block) bool {
	return b.Start.Before(other.End) && other.Start.Before(b.End)
}
