package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/transport/http/shared"
)

type DepartmentCount struct {
	DepartmentName string `json:"departmentName"`
	Count          int    `json:"count"`
}

type Stats struct {
	TotalEmployees       int               `json:"totalEmployees"`
	TotalDepartments     int               `json:"totalDepartments"`
	TotalSalaryThisMonth float64           `json:"totalSalaryThisMonth"`
	LeaveCounts          map[string]int    `json:"leaveCounts"`
	AttendanceToday      map[string]int    `json:"attendanceToday"`
	DepartmentCounts     []DepartmentCount `json:"departmentCounts"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Stats assembles the admin dashboard: simple tallies plus the current
// calendar month's salary total. Every aggregate coalesces missing values
// to zero so one malformed record never fails the whole report.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	now := s.now()
	monthStart, monthEnd := shared.MonthBounds(now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := Stats{
		LeaveCounts:     map[string]int{},
		AttendanceToday: map[string]int{},
	}

	var err error
	if stats.TotalEmployees, err = s.store.countEmployees(ctx); err != nil {
		return Stats{}, err
	}
	if stats.TotalDepartments, err = s.store.countDepartments(ctx); err != nil {
		return Stats{}, err
	}
	if stats.TotalSalaryThisMonth, err = s.store.salaryTotal(ctx, monthStart, monthEnd); err != nil {
		return Stats{}, err
	}
	if stats.LeaveCounts, err = s.store.leaveCounts(ctx); err != nil {
		return Stats{}, err
	}
	if stats.AttendanceToday, err = s.store.attendanceCounts(ctx, today); err != nil {
		return Stats{}, err
	}
	if stats.DepartmentCounts, err = s.store.departmentCounts(ctx); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (s *Store) countEmployees(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM accounts WHERE role = 'employee'").Scan(&count)
	return count, err
}

func (s *Store) countDepartments(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM departments").Scan(&count)
	return count, err
}

// salaryTotal sums stored salary totals whose pay date falls inside the
// period; out-of-range records are excluded by the predicate.
func (s *Store) salaryTotal(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(COALESCE(total_salary, 0)), 0)
    FROM salaries
    WHERE pay_date >= $1 AND pay_date <= $2
  `, start, end).Scan(&total)
	return total, err
}

func (s *Store) leaveCounts(ctx context.Context) (map[string]int, error) {
	return s.countsByStatus(ctx, "SELECT status, COUNT(1) FROM leave_requests GROUP BY status")
}

func (s *Store) attendanceCounts(ctx context.Context, day time.Time) (map[string]int, error) {
	return s.countsByStatus(ctx, "SELECT status, COUNT(1) FROM attendance WHERE day = $1 GROUP BY status", day)
}

func (s *Store) countsByStatus(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (s *Store) departmentCounts(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.name, COUNT(a.id)
    FROM accounts a
    JOIN departments d ON a.department_id = d.id
    WHERE a.role = 'employee'
    GROUP BY d.name
    ORDER BY d.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []DepartmentCount
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.DepartmentName, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
