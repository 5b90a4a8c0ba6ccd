package metrics

import (
	"testing"
	"time"
)

func TestCollectorCountsByAreaAndStatus(t *testing.T) {
	c := New()
	c.Record("payroll", 200, 10*time.Millisecond)
	c.Record("payroll", 201, 20*time.Millisecond)
	c.Record("leave", 404, 5*time.Millisecond)
	c.Record("leave", 500, 5*time.Millisecond)
	c.Record("", 429, 0)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(5) {
		t.Fatalf("expected 5 requests, got %v", snap["requestsTotal"])
	}
	if snap["clientErrors"] != uint64(1) {
		t.Fatalf("expected 1 client error, got %v", snap["clientErrors"])
	}
	if snap["serverErrors"] != uint64(1) {
		t.Fatalf("expected 1 server error, got %v", snap["serverErrors"])
	}
	if snap["rateLimitedTotal"] != uint64(1) {
		t.Fatalf("expected 1 rate limited, got %v", snap["rateLimitedTotal"])
	}

	byArea, ok := snap["requestsByArea"].(map[string]uint64)
	if !ok {
		t.Fatalf("expected per-area map, got %T", snap["requestsByArea"])
	}
	if byArea["payroll"] != 2 || byArea["leave"] != 2 {
		t.Fatalf("unexpected area counts: %v", byArea)
	}
	if _, found := byArea[""]; found {
		t.Fatal("untracked paths must not appear in the area table")
	}
}

func TestCollectorAverageDuration(t *testing.T) {
	c := New()
	c.Record("dashboard", 200, 10*time.Millisecond)
	c.Record("dashboard", 200, 30*time.Millisecond)

	snap := c.Snapshot()
	if snap["avgDurationMs"] != float64(20) {
		t.Fatalf("expected avg 20ms, got %v", snap["avgDurationMs"])
	}
}
