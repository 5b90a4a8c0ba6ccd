package payroll

import "testing"

func TestComputeNetPay(t *testing.T) {
	net := ComputeNetPay(Components{
		BaseSalary:      45000,
		Bonus:           2000,
		OvertimePay:     500,
		Tax:             3000,
		LeaveDeductions: 0,
	})
	if net != 44500 {
		t.Fatalf("expected 44500, got %v", net)
	}
}

func TestComputeNetPayDefaults(t *testing.T) {
	if net := ComputeNetPay(Components{BaseSalary: 30000}); net != 30000 {
		t.Fatalf("expected 30000 with zero components, got %v", net)
	}
}

func TestComputeNetPayDeductions(t *testing.T) {
	net := ComputeNetPay(Components{BaseSalary: 10000, Tax: 1500, LeaveDeductions: 500})
	if net != 8000 {
		t.Fatalf("expected 8000, got %v", net)
	}
}

func TestComputeNetPayIdempotent(t *testing.T) {
	c := Components{BaseSalary: 45000, Bonus: 2000, OvertimePay: 500, Tax: 3000}
	if ComputeNetPay(c) != ComputeNetPay(c) {
		t.Fatal("recomputation not deterministic")
	}
}
