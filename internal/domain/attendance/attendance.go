package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

var ErrUnknownEmployee = errors.New("employee not found")

type Record struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Day        time.Time `json:"date"`
	Status     string    `json:"status"`
	MarkedAt   time.Time `json:"markedAt"`
}

func ValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Mark records the status for (employee, day) in a single atomic upsert;
// concurrent marks resolve to the last writer.
func (s *Store) Mark(ctx context.Context, employeeID string, day time.Time, status string) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, day, status)
    VALUES ($1, $2, $3)
    ON CONFLICT (employee_id, day)
    DO UPDATE SET status = EXCLUDED.status, marked_at = now()
    RETURNING id, employee_id, day, status, marked_at
  `, employeeID, day, status).Scan(&rec.ID, &rec.EmployeeID, &rec.Day, &rec.Status, &rec.MarkedAt)
	if isForeignKeyViolation(err) {
		return Record{}, ErrUnknownEmployee
	}
	return rec, err
}

// ByDay returns a map of employee id to status for the given day.
func (s *Store) ByDay(ctx context.Context, day time.Time) (map[string]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT employee_id, status FROM attendance WHERE day = $1", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]string)
	for rows.Next() {
		var employeeID, status string
		if err := rows.Scan(&employeeID, &status); err != nil {
			return nil, err
		}
		statuses[employeeID] = status
	}
	return statuses, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
