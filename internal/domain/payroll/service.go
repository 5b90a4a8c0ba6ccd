package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Generate validates the employee reference, derives net pay and persists
// the record. Records are immutable once generated.
func (s *Service) Generate(ctx context.Context, employeeID, month string, c Components) (Record, error) {
	name, err := s.store.EmployeeName(ctx, employeeID)
	if err != nil {
		return Record{}, err
	}
	netPay := ComputeNetPay(c)
	return s.store.Create(ctx, employeeID, name, month, c, netPay)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.Find(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Record, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListMine(ctx context.Context, employeeID string) ([]Record, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

func (s *Store) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, "SELECT name FROM accounts WHERE id = $1", employeeID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrEmployeeNotFound
	}
	return name, err
}
