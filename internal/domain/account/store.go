package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const accountColumns = `
  a.id, a.name, a.email, a.role, a.department_id, COALESCE(d.name, ''), a.position, a.dob, a.created_at
`

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &a.DepartmentID, &a.DepartmentName, &a.Position, &a.DOB, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return a, nil
}

func (s *Store) Create(ctx context.Context, name, email, passwordHash, role string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO accounts (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, name, email, passwordHash, role).Scan(&id)
	if isUniqueViolation(err) {
		return "", ErrEmailTaken
	}
	return id, err
}

func (s *Store) CreateEmployee(ctx context.Context, emp NewEmployee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO accounts (name, email, password_hash, role, department_id, position)
    VALUES ($1, $2, $3, 'employee', $4, $5)
    RETURNING id
  `, emp.Name, emp.Email, emp.PasswordHash, emp.DepartmentID, emp.Position).Scan(&id)
	if isUniqueViolation(err) {
		return "", ErrEmailTaken
	}
	return id, err
}

func (s *Store) FindByID(ctx context.Context, id string) (Account, error) {
	return scanAccount(s.DB.QueryRow(ctx, `
    SELECT `+accountColumns+`
    FROM accounts a
    LEFT JOIN departments d ON a.department_id = d.id
    WHERE a.id = $1
  `, id))
}

// CredentialsByEmail returns the account plus its password hash for login.
func (s *Store) CredentialsByEmail(ctx context.Context, email string) (Account, string, error) {
	var a Account
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT `+accountColumns+`, a.password_hash
    FROM accounts a
    LEFT JOIN departments d ON a.department_id = d.id
    WHERE a.email = $1
  `, email).Scan(&a.ID, &a.Name, &a.Email, &a.Role, &a.DepartmentID, &a.DepartmentName, &a.Position, &a.DOB, &a.CreatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, "", ErrNotFound
	}
	if err != nil {
		return Account{}, "", err
	}
	return a, hash, nil
}

func (s *Store) PasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, "SELECT password_hash FROM accounts WHERE id = $1", id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (s *Store) UpdateProfile(ctx context.Context, id, name string, dob *time.Time) error {
	tag, err := s.DB.Exec(ctx, "UPDATE accounts SET name = $2, dob = COALESCE($3, dob) WHERE id = $1", id, name, dob)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE accounts SET password_hash = $2 WHERE id = $1", id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Account, error) {
	return s.listByQuery(ctx, `
    SELECT `+accountColumns+`
    FROM accounts a
    LEFT JOIN departments d ON a.department_id = d.id
    WHERE a.role = 'employee'
    ORDER BY a.name
  `)
}

func (s *Store) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]Account, error) {
	return s.listByQuery(ctx, `
    SELECT `+accountColumns+`
    FROM accounts a
    LEFT JOIN departments d ON a.department_id = d.id
    WHERE a.role = 'employee' AND a.department_id = $1
    ORDER BY a.name
  `, departmentID)
}

func (s *Store) listByQuery(ctx context.Context, query string, args ...any) ([]Account, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &a.DepartmentID, &a.DepartmentName, &a.Position, &a.DOB, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE accounts
    SET name = $2, email = $3, department_id = $4, position = $5
    WHERE id = $1 AND role = 'employee'
  `, id, update.Name, update.Email, update.DepartmentID, update.Position)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM accounts WHERE id = $1 AND role = 'employee'", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
