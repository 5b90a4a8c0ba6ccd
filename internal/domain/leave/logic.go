package leave

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end date before start date")

// CalculateDays returns the inclusive day count between two calendar dates.
// Inputs are anchored to midnight first, so the clock component of a
// timestamp never changes the span; a same-day request is 1 day.
func CalculateDays(start, end time.Time) (int, error) {
	start = midnight(start)
	end = midnight(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
