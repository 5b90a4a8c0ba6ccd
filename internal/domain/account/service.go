package account

import (
	"context"
	"errors"
	"time"

	"ems/internal/auth"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Register creates a self-signup account with the employee role.
func (s *Service) Register(ctx context.Context, name, email, password string) (Account, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Account{}, err
	}
	id, err := s.store.Create(ctx, name, email, hash, auth.RoleEmployee)
	if err != nil {
		return Account{}, err
	}
	return s.store.FindByID(ctx, id)
}

// Authenticate resolves the account for an email/password pair. Unknown
// email and wrong password both surface as ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	acct, hash, err := s.store.CredentialsByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if err := auth.CheckPassword(hash, password); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

func (s *Service) Get(ctx context.Context, id string) (Account, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id, name string, dob *time.Time) (Account, error) {
	if err := s.store.UpdateProfile(ctx, id, name, dob); err != nil {
		return Account{}, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) ChangePassword(ctx context.Context, id, current, next string) error {
	hash, err := s.store.PasswordHash(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CheckPassword(hash, current); err != nil {
		return ErrInvalidCredentials
	}
	newHash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, id, newHash)
}

func (s *Service) AddEmployee(ctx context.Context, name, email, password string, departmentID *string, position string) (Account, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Account{}, err
	}
	id, err := s.store.CreateEmployee(ctx, NewEmployee{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		DepartmentID: departmentID,
		Position:     position,
	})
	if err != nil {
		return Account{}, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Account, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]Account, error) {
	return s.store.ListEmployeesByDepartment(ctx, departmentID)
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (Account, error) {
	if err := s.store.UpdateEmployee(ctx, id, update); err != nil {
		return Account{}, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	return s.store.DeleteEmployee(ctx, id)
}
