package salary

import "testing"

func TestComputeTotal(t *testing.T) {
	if got := ComputeTotal(30000, 5000, 2000); got != 33000 {
		t.Fatalf("expected 33000, got %v", got)
	}
}

func TestComputeTotalDefaults(t *testing.T) {
	// Absent allowances/deductions arrive as zero.
	if got := ComputeTotal(30000, 0, 0); got != 30000 {
		t.Fatalf("expected 30000, got %v", got)
	}
}

func TestComputeTotalIdempotent(t *testing.T) {
	first := ComputeTotal(45000, 1200.50, 800.25)
	second := ComputeTotal(45000, 1200.50, 800.25)
	if first != second {
		t.Fatalf("recomputation not deterministic: %v vs %v", first, second)
	}
}
