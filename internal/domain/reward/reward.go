package reward

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnknownEmployee = errors.New("employee not found")

type Reward struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	RewardType   string    `json:"rewardType"`
	GivenByID    string    `json:"givenById"`
	GivenByName  string    `json:"givenByName,omitempty"`
	DateGiven    time.Time `json:"dateGiven"`
}

type LeaderboardEntry struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	TotalRewards int    `json:"totalRewards"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Give(ctx context.Context, employeeID, rewardType, givenBy string) (Reward, error) {
	var rw Reward
	err := s.DB.QueryRow(ctx, `
    INSERT INTO rewards (employee_id, reward_type, given_by)
    VALUES ($1, $2, $3)
    RETURNING id, employee_id, reward_type, given_by, date_given
  `, employeeID, rewardType, givenBy).Scan(&rw.ID, &rw.EmployeeID, &rw.RewardType, &rw.GivenByID, &rw.DateGiven)
	if isForeignKeyViolation(err) {
		return Reward{}, ErrUnknownEmployee
	}
	return rw, err
}

const rewardColumns = `
  r.id, r.employee_id, e.name, r.reward_type, r.given_by, g.name, r.date_given
`

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Reward, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []Reward
	for rows.Next() {
		var rw Reward
		if err := rows.Scan(&rw.ID, &rw.EmployeeID, &rw.EmployeeName, &rw.RewardType, &rw.GivenByID, &rw.GivenByName, &rw.DateGiven); err != nil {
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

func (s *Store) ListAll(ctx context.Context) ([]Reward, error) {
	return s.list(ctx, `
    SELECT `+rewardColumns+`
    FROM rewards r
    JOIN accounts e ON r.employee_id = e.id
    JOIN accounts g ON r.given_by = g.id
    ORDER BY r.date_given DESC
  `)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Reward, error) {
	return s.list(ctx, `
    SELECT `+rewardColumns+`
    FROM rewards r
    JOIN accounts e ON r.employee_id = e.id
    JOIN accounts g ON r.given_by = g.id
    WHERE r.employee_id = $1
    ORDER BY r.date_given DESC
  `, employeeID)
}

// Leaderboard reports the ten most rewarded employees.
func (s *Store) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.employee_id, e.name, COUNT(1) AS total
    FROM rewards r
    JOIN accounts e ON r.employee_id = e.id
    GROUP BY r.employee_id, e.name
    ORDER BY total DESC, e.name
    LIMIT 10
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err := rows.Scan(&entry.EmployeeID, &entry.EmployeeName, &entry.TotalRewards); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
