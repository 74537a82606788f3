package domain

type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusPaused   GoalStatus = "paused"
	GoalStatusArchived GoalStatus = "archived"
)

// Goal is a long-running objective the task proposer expands into daily
// task candidates when the caller supplies no explicit task list.
type Goal struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Title             string     `json:"title"`
	Priority          int        `json:"priority"`
	EffortEstimateMin int        `json:"effort_estimate_min"`
	Status            GoalStatus `json:"status"`
}

// User is the slice of the user document the scheduler needs: the push
// token for plan notifications and the calendar credential for free-window
// discovery. Either may be empty when the integration is not linked.
type User struct {
	ID                   string `json:"id"`
	ExpoPushToken        string `json:"expo_push_token,omitempty"`
	CalendarRefreshToken string `json:"calendar_refresh_token,omitempty"`
}
