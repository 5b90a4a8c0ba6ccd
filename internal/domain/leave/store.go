package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("leave request not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, employeeID, leaveType string, start, end time.Time, totalDays int, reason string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, total_days, reason)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, employee_id, leave_type, start_date, end_date, total_days, reason, status, created_at
  `, employeeID, leaveType, start, end, totalDays, reason).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays, &req.Reason, &req.Status, &req.CreatedAt)
	return req, err
}

const requestColumns = `
  l.id, l.employee_id, a.name, a.email, l.leave_type, l.start_date, l.end_date,
  l.total_days, l.reason, l.status, l.created_at
`

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.EmployeeName, &req.EmployeeEmail,
			&req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays, &req.Reason, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.list(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests l
    JOIN accounts a ON l.employee_id = a.id
    WHERE l.employee_id = $1
    ORDER BY l.created_at DESC
  `, employeeID)
}

func (s *Store) ListAll(ctx context.Context) ([]Request, error) {
	return s.list(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests l
    JOIN accounts a ON l.employee_id = a.id
    ORDER BY l.created_at DESC
  `)
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    UPDATE leave_requests l
    SET status = $2
    FROM accounts a
    WHERE l.id = $1 AND a.id = l.employee_id
    RETURNING `+requestColumns+`
  `, id, status).Scan(&req.ID, &req.EmployeeID, &req.EmployeeName, &req.EmployeeEmail,
		&req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays, &req.Reason, &req.Status, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	return req, err
}
