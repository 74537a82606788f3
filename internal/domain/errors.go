package domain

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrBlockNotFound      = errors.New("block not found")
	ErrReplanLimitReached = errors.New("replan limit reached for today")
	ErrCalendarNotLinked  = errors.New("no calendar linked for user")
	ErrInvalidTask        = errors.New("invalid task")
	ErrInvalidWindow      = errors.New("invalid free window")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
)
