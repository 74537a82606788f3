package domain

import "fmt"

// Energy is an informational tag on tasks and blocks. It never influences
// placement decisions.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

func (e Energy) String() string {
	return string(e)
}

// Task is an ephemeral scheduling input. Tasks are not persisted; only the
// blocks derived from them are.
type Task struct {
	Title     string  `json:"title"`
	GoalID    string  `json:"goal_id,omitempty"`
	EffortMin int     `json:"effort_min"`
	Energy    Energy  `json:"energy,omitempty"`
	Urgency   float64 `json:"urgency"`
	Impact    float64 `json:"impact"`
}

func (t Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidTask)
	}
	if t.EffortMin <= 0 {
		return fmt.Errorf("%w: effort_min must be positive, got %d", ErrInvalidTask, t.EffortMin)
	}
	if t.Urgency <= 0 {
		return fmt.Errorf("%w: urgency must be positive", ErrInvalidTask)
	}
	if t.Impact <= 0 {
		return fmt.Errorf("%w: impact must be positive", ErrInvalidTask)
	}
	return nil
}
