package account

import "time"

type Account struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	DepartmentID   *string    `json:"departmentId,omitempty"`
	DepartmentName string     `json:"departmentName,omitempty"`
	Position       string     `json:"position,omitempty"`
	DOB            *time.Time `json:"dob,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewEmployee carries the fields an admin supplies when creating an
// employee account.
type NewEmployee struct {
	Name         string
	Email        string
	PasswordHash string
	DepartmentID *string
	Position     string
}

type EmployeeUpdate struct {
	Name         string
	Email        string
	DepartmentID *string
	Position     string
}
