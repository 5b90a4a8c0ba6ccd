package task

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

var ErrNotFound = errors.New("task not found")

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssigneeID  string    `json:"assigneeId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidStatus(status string) bool {
	for _, candidate := range Statuses {
		if status == candidate {
			return true
		}
	}
	return false
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListByAssignee(ctx context.Context, assigneeID string) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, description, status, assignee_id, created_at
    FROM tasks
    WHERE assignee_id = $1
    ORDER BY created_at DESC
  `, assigneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssigneeID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) Create(ctx context.Context, assigneeID, title, description, status string) (Task, error) {
	var t Task
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (title, description, status, assignee_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, status, assignee_id, created_at
  `, title, description, status, assigneeID).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssigneeID, &t.CreatedAt)
	return t, err
}

// Update modifies a task only when it belongs to the assignee; foreign
// tasks surface as not found rather than forbidden.
func (s *Store) Update(ctx context.Context, id, assigneeID, title, description, status string) (Task, error) {
	var t Task
	err := s.DB.QueryRow(ctx, `
    UPDATE tasks
    SET title = $3, description = $4, status = $5
    WHERE id = $1 AND assignee_id = $2
    RETURNING id, title, description, status, assignee_id, created_at
  `, id, assigneeID, title, description, status).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.AssigneeID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return t, err
}

func (s *Store) Delete(ctx context.Context, id, assigneeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND assignee_id = $2", id, assigneeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
