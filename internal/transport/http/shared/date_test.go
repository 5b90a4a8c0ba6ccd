package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-11-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.November || parsed.Day() != 10 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	if _, err := ParseDate("2025-11-10T08:30:00Z"); err != nil {
		t.Fatalf("RFC3339 should parse: %v", err)
	}

	if _, err := ParseDate("10/11/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseDateAnchorsTimestampsToMidnight(t *testing.T) {
	// An evening timestamp still denotes its calendar day, so a two-day
	// span must not collapse to one.
	start, err := ParseDate("2025-11-10T20:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight, got %v", start)
	}
	if start.Day() != 10 {
		t.Fatalf("expected day 10, got %d", start.Day())
	}

	end, err := ParseDate("2025-11-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start).Hours(); got != 24 {
		t.Fatalf("expected a full day between the dates, got %vh", got)
	}
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 11, 18, 14, 3, 0, 0, time.UTC)
	start, end := MonthBounds(now)

	if !start.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2025, 11, 30, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}

	outside := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !outside.After(end) {
		t.Fatal("first instant of next month must fall outside the bounds")
	}
}
