package salary

import "time"

type Record struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName,omitempty"`
	EmployeeEmail  string    `json:"employeeEmail,omitempty"`
	DepartmentID   string    `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	BasicSalary    float64   `json:"basicSalary"`
	Allowances     float64   `json:"allowances"`
	Deductions     float64   `json:"deductions"`
	TotalSalary    float64   `json:"totalSalary"`
	PayDate        time.Time `json:"payDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewRecord carries validated input for a salary entry; TotalSalary is
// derived, not supplied.
type NewRecord struct {
	EmployeeID   string
	DepartmentID string
	BasicSalary  float64
	Allowances   float64
	Deductions   float64
	PayDate      time.Time
}
