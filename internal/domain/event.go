package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoggedEvent is one successful logging of an action. Events are immutable;
// only resets remove them.
type LoggedEvent struct {
	ID           int64
	UserID       uuid.UUID
	ActionText   string
	MinutesAdded int
	OccurredAt   time.Time
}

// Totals is the derived time state of a user.
type Totals struct {
	TotalMinutes int
	TodayMinutes int
}

// TimeBreakdown splits a minute count into whole days, hours and minutes.
type TimeBreakdown struct {
	Days    int
	Hours   int
	Minutes int
}

// BreakdownMinutes converts total minutes into days, hours and minutes.
func BreakdownMinutes(total int) TimeBreakdown {
	const day = 24 * 60
	if total < 0 {
		total = 0
	}
	rem := total % day
	return TimeBreakdown{
		Days:    total / day,
		Hours:   rem / 60,
		Minutes: rem % 60,
	}
}
