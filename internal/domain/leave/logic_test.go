package leave

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDays(t *testing.T) {
	days, err := CalculateDays(day(2025, 1, 10), day(2025, 1, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	days, err = CalculateDays(day(2025, 11, 10), day(2025, 11, 11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 2 {
		t.Fatalf("expected 2 days, got %v", days)
	}
}

func TestCalculateDaysCrossMonth(t *testing.T) {
	days, err := CalculateDays(day(2025, 1, 30), day(2025, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 4 {
		t.Fatalf("expected 4 days, got %v", days)
	}

	days, err = CalculateDays(day(2024, 12, 30), day(2025, 1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 4 {
		t.Fatalf("expected 4 days across year boundary, got %v", days)
	}
}

func TestCalculateDaysIgnoresClockComponent(t *testing.T) {
	// An evening start still occupies its whole calendar day.
	start := time.Date(2025, 11, 10, 20, 0, 0, 0, time.UTC)
	end := day(2025, 11, 11)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 2 {
		t.Fatalf("expected 2 days regardless of time of day, got %v", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	if _, err := CalculateDays(day(2025, 2, 10), day(2025, 2, 9)); err == nil {
		t.Fatal("expected error for invalid range")
	}
}
