package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Create persists a generated payroll record. The employee display name is
// denormalized at generation time; net pay is computed by the caller from
// the components, never taken from the client.
func (s *Store) Create(ctx context.Context, employeeID, employeeName, month string, c Components, netPay float64) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payrolls (employee_id, employee_name, month, base_salary, bonus, overtime_pay, tax, leave_deductions, net_pay)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, employee_id, employee_name, month, base_salary, bonus, overtime_pay, tax, leave_deductions, net_pay, generated_at
  `, employeeID, employeeName, month, c.BaseSalary, c.Bonus, c.OvertimePay, c.Tax, c.LeaveDeductions, netPay).Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Month, &rec.BaseSalary, &rec.Bonus,
		&rec.OvertimePay, &rec.Tax, &rec.LeaveDeductions, &rec.NetPay, &rec.GeneratedAt)
	return rec, err
}

const recordColumns = `
  p.id, p.employee_id, p.employee_name, a.email, p.month, p.base_salary, p.bonus,
  p.overtime_pay, p.tax, p.leave_deductions, p.net_pay, p.generated_at
`

func (s *Store) scan(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeEmail, &rec.Month,
		&rec.BaseSalary, &rec.Bonus, &rec.OvertimePay, &rec.Tax, &rec.LeaveDeductions, &rec.NetPay, &rec.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) Find(ctx context.Context, id string) (Record, error) {
	return s.scan(s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payrolls p
    JOIN accounts a ON p.employee_id = a.id
    WHERE p.id = $1
  `, id))
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeEmail, &rec.Month,
			&rec.BaseSalary, &rec.Bonus, &rec.OvertimePay, &rec.Tax, &rec.LeaveDeductions, &rec.NetPay, &rec.GeneratedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	return s.list(ctx, `
    SELECT `+recordColumns+`
    FROM payrolls p
    JOIN accounts a ON p.employee_id = a.id
    ORDER BY p.generated_at DESC
  `)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.list(ctx, `
    SELECT `+recordColumns+`
    FROM payrolls p
    JOIN accounts a ON p.employee_id = a.id
    WHERE p.employee_id = $1
    ORDER BY p.generated_at DESC
  `, employeeID)
}
