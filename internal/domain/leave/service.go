package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Mailer delivers leave decision notifications; a noop implementation is
// used when email is not configured.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Service struct {
	store  *Store
	mailer Mailer
}

func NewService(store *Store, mailer Mailer) *Service {
	return &Service{store: store, mailer: mailer}
}

// Apply validates the date range and persists a pending request. Nothing is
// written when the range is invalid.
func (s *Service) Apply(ctx context.Context, employeeID, leaveType string, start, end time.Time, reason string) (Request, error) {
	totalDays, err := CalculateDays(start, end)
	if err != nil {
		return Request{}, err
	}
	return s.store.Create(ctx, employeeID, leaveType, start, end, totalDays, reason)
}

func (s *Service) ListMine(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListAll(ctx context.Context) ([]Request, error) {
	return s.store.ListAll(ctx)
}

// Decide sets the request status and notifies the employee when the request
// leaves the pending state. Notification failures are logged, not surfaced.
func (s *Service) Decide(ctx context.Context, id, status string) (Request, error) {
	req, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return Request{}, err
	}

	if s.mailer != nil && status != StatusPending {
		subject := fmt.Sprintf("Leave request %s", status)
		body := fmt.Sprintf("Your %s leave from %s to %s (%d days) has been %s.",
			req.LeaveType,
			req.StartDate.Format("2006-01-02"),
			req.EndDate.Format("2006-01-02"),
			req.TotalDays,
			status,
		)
		if err := s.mailer.Send(ctx, req.EmployeeEmail, subject, body); err != nil {
			slog.Warn("leave decision notification failed", "leaveId", req.ID, "err", err)
		}
	}
	return req, nil
}
