package payroll

// Components are the named adjustments applied to a base salary. Absent
// components are zero.
type Components struct {
	BaseSalary      float64
	Bonus           float64
	OvertimePay     float64
	Tax             float64
	LeaveDeductions float64
}

// ComputeNetPay applies the fixed sign convention:
// net = base + bonus + overtime - tax - leaveDeductions.
func ComputeNetPay(c Components) float64 {
	return c.BaseSalary + c.Bonus + c.OvertimePay - c.Tax - c.LeaveDeductions
}
