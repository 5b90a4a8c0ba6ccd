package recruitment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StageNew         = "new"
	StageShortlisted = "shortlisted"
	StageInterview   = "interview"
	StageHired       = "hired"
)

var Stages = []string{StageNew, StageShortlisted, StageInterview, StageHired}

var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrJobNotFound       = errors.New("job not found")
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`

	// Pipeline counters are derived from applicants at read time rather
	// than stored, so they can never go stale.
	Applications int `json:"applications"`
	Shortlisted  int `json:"shortlisted"`
	Interviews   int `json:"interviewScheduled"`
	Hired        int `json:"hired"`
}

type Applicant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Resume    string    `json:"resume"`
	Skills    []string  `json:"skills"`
	Stage     string    `json:"stage"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidStage(stage string) bool {
	for _, candidate := range Stages {
		if stage == candidate {
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

func (s *Store) CreateJob(ctx context.Context, job Job) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO jobs (title, department, location, experience, description, skills)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, job.Title, job.Department, job.Location, job.Experience, job.Description, job.Skills).Scan(&id)
	return id, err
}

func (s *Store) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT j.id, j.title, j.department, j.location, j.experience, j.description, j.skills, j.created_at,
           COUNT(ap.id),
           COUNT(ap.id) FILTER (WHERE ap.stage = 'shortlisted'),
           COUNT(ap.id) FILTER (WHERE ap.stage = 'interview'),
           COUNT(ap.id) FILTER (WHERE ap.stage = 'hired')
    FROM jobs j
    LEFT JOIN applicants ap ON ap.job_id = j.id
    GROUP BY j.id
    ORDER BY j.created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Department, &job.Location, &job.Experience,
			&job.Description, &job.Skills, &job.CreatedAt,
			&job.Applications, &job.Shortlisted, &job.Interviews, &job.Hired); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *Store) ListApplicants(ctx context.Context) ([]Applicant, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ap.id, ap.name, ap.email, ap.phone, ap.resume, ap.skills, ap.stage, ap.job_id, j.title, ap.created_at
    FROM applicants ap
    JOIN jobs j ON ap.job_id = j.id
    ORDER BY ap.created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		var ap Applicant
		if err := rows.Scan(&ap.ID, &ap.Name, &ap.Email, &ap.Phone, &ap.Resume, &ap.Skills,
			&ap.Stage, &ap.JobID, &ap.JobTitle, &ap.CreatedAt); err != nil {
			return nil, err
		}
		applicants = append(applicants, ap)
	}
	return applicants, rows.Err()
}

func (s *Store) UpdateStage(ctx context.Context, id, stage string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE applicants SET stage = $2 WHERE id = $1", id, stage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *Store) DeleteApplicant(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM applicants WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}
