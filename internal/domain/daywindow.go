package domain

import "time"

// MaxOffsetMinutes bounds the client-declared UTC offset: valid offsets lie
// strictly between -MaxOffsetMinutes and MaxOffsetMinutes.
const MaxOffsetMinutes = 24 * 60

// DayWindow is the half-open UTC interval [Start, End) of one local calendar day.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// LocalDayWindow returns the UTC boundaries of the local day containing now,
// where the local clock runs offsetMinutes ahead of UTC (positive = east).
func LocalDayWindow(now time.Time, offsetMinutes int) (DayWindow, error) {
	if offsetMinutes <= -MaxOffsetMinutes || offsetMinutes >= MaxOffsetMinutes {
		return DayWindow{}, ErrInvalidTimezoneOffset
	}

	offset := time.Duration(offsetMinutes) * time.Minute
	local := now.UTC().Add(offset)
	localMidnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	start := localMidnight.Add(-offset)
	// A fixed offset has no DST transitions, so every local day is 24h.
	return DayWindow{Start: start, End: start.Add(24 * time.Hour)}, nil
}
