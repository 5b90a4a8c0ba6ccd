package payroll

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("payroll record not found")

type Record struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	EmployeeName    string    `json:"employeeName"`
	EmployeeEmail   string    `json:"employeeEmail,omitempty"`
	Month           string    `json:"month"`
	BaseSalary      float64   `json:"baseSalary"`
	Bonus           float64   `json:"bonus"`
	OvertimePay     float64   `json:"overtimePay"`
	Tax             float64   `json:"tax"`
	LeaveDeductions float64   `json:"leaveDeductions"`
	NetPay          float64   `json:"netPay"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

func (r Record) Components() Components {
	return Components{
		BaseSalary:      r.BaseSalary,
		Bonus:           r.Bonus,
		OvertimePay:     r.OvertimePay,
		Tax:             r.Tax,
		LeaveDeductions: r.LeaveDeductions,
	}
}
