package salary

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBadReference = errors.New("employee or department not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, rec NewRecord) (Record, error) {
	total := ComputeTotal(rec.BasicSalary, rec.Allowances, rec.Deductions)

	var out Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salaries (employee_id, department_id, basic_salary, allowances, deductions, total_salary, pay_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, employee_id, department_id, basic_salary, allowances, deductions, total_salary, pay_date, created_at
  `, rec.EmployeeID, rec.DepartmentID, rec.BasicSalary, rec.Allowances, rec.Deductions, total, rec.PayDate).Scan(
		&out.ID, &out.EmployeeID, &out.DepartmentID, &out.BasicSalary, &out.Allowances, &out.Deductions, &out.TotalSalary, &out.PayDate, &out.CreatedAt)
	if isForeignKeyViolation(err) {
		return Record{}, ErrBadReference
	}
	return out, err
}

const recordColumns = `
  s.id, s.employee_id, a.name, a.email, s.department_id, d.name,
  s.basic_salary, s.allowances, s.deductions, s.total_salary, s.pay_date, s.created_at
`

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeEmail,
			&rec.DepartmentID, &rec.DepartmentName, &rec.BasicSalary, &rec.Allowances,
			&rec.Deductions, &rec.TotalSalary, &rec.PayDate, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	return s.list(ctx, `
    SELECT `+recordColumns+`
    FROM salaries s
    JOIN accounts a ON s.employee_id = a.id
    JOIN departments d ON s.department_id = d.id
    ORDER BY s.pay_date DESC
  `)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.list(ctx, `
    SELECT `+recordColumns+`
    FROM salaries s
    JOIN accounts a ON s.employee_id = a.id
    JOIN departments d ON s.department_id = d.id
    WHERE s.employee_id = $1
    ORDER BY s.pay_date DESC
  `, employeeID)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
