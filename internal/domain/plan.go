package domain

import "time"

// MaxReplans caps how many replan generations a user gets per day after the
// first full generation.
const MaxReplans = 2

type PlanType string

const (
	PlanTypeFull   PlanType = "full"
	PlanTypeReplan PlanType = "replan"
)

func (p PlanType) String() string {
	return string(p)
}

type Adherence struct {
	Completed int `json:"completed"`
	Planned   int `json:"planned"`
}

// Plan is the persisted day aggregate. One Plan exists per (user, date); it
// is created by the first full generation, mutated by replans and block
// completions, and never deleted.
type Plan struct {
	UserID      string     `json:"user_id"`
	Date        string     `json:"date"`
	Blocks      []Block    `json:"blocks"`
	Rationale   string     `json:"rationale,omitempty"`
	PlanType    PlanType   `json:"plan_type,omitempty"`
	ReplanCount int        `json:"replan_count"`
	Adherence   *Adherence `json:"adherence,omitempty"`
}

func NewPlan(userID, date string) *Plan {
	return &Plan{
		UserID: userID,
		Date:   date,
		Blocks: make([]Block, 0),
	}
}

func (p *Plan) HasBlocks() bool {
	return p != nil && len(p.Blocks) > 0
}

// FindBlock locates a block by id, falling back to an exact title match.
func (p *Plan) FindBlock(idOrTitle string) *Block {
	for i := range p.Blocks {
		if p.Blocks[i].ID == idOrTitle {
			return &p.Blocks[i]
		}
	}
	for i := range p.Blocks {
		if p.Blocks[i].Title == idOrTitle {
			return &p.Blocks[i]
		}
	}
	return nil
}

func (p *Plan) RecomputeAdherence() Adherence {
	completed := 0
	for _, b := range p.Blocks {
		if b.Completed {
			completed++
		}
	}
	a := Adherence{Completed: completed, Planned: len(p.Blocks)}
	p.Adherence = &a
	return a
}

// CommittedBlocks returns the blocks that survive a replan: anything the user
// locked or already completed.
func (p *Plan) CommittedBlocks() []Block {
	if p == nil {
		return nil
	}
	kept := make([]Block, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		if b.Locked || b.Completed {
			kept = append(kept, b)
		}
	}
	return kept
}

// DateKey is the calendar-day document key, derived in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey validates a caller-supplied date key.
func ParseDateKey(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateKey(t), nil
}

// DayBounds returns the UTC day horizon [00:00, 24:00) containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := t.UTC().Truncate(24 * time.Hour)
	return start, start.Add(24 * time.Hour)
}
