package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD. The result is always anchored
// to midnight: leave spans and attendance days count calendar dates, so a
// timestamp's clock component must not shift the arithmetic.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, parsed.Location()), nil
}

// MonthBounds returns the inclusive start and end instants of the calendar
// month containing t, in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
