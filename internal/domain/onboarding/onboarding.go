package onboarding

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("onboarding record not found")

type Record struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	JoinDate   *time.Time `json:"joinDate,omitempty"`
	Progress   int        `json:"progress"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, department, join_date, progress
    FROM onboarding_records
    ORDER BY join_date NULLS LAST, name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Department, &rec.JoinDate, &rec.Progress); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Create(ctx context.Context, name, department string, joinDate *time.Time) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO onboarding_records (name, department, join_date)
    VALUES ($1, $2, $3)
    RETURNING id, name, department, join_date, progress
  `, name, department, joinDate).Scan(&rec.ID, &rec.Name, &rec.Department, &rec.JoinDate, &rec.Progress)
	return rec, err
}

func (s *Store) MarkComplete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE onboarding_records SET progress = 100 WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
