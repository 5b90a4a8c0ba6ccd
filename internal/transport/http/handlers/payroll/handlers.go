package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/payroll"
	"ems/internal/money"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Handler struct {
	Payroll *payroll.Service
	Audit   *audit.Service
}

func NewHandler(svc *payroll.Service, auditor *audit.Service) *Handler {
	return &Handler{Payroll: svc, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireAdmin).Post("/", h.handleGenerate)
		r.With(middleware.RequireAdmin).Get("/", h.handleListAll)
		r.Get("/my", h.handleListMine)
		r.Get("/{id}/payslip", h.handlePayslip)
	})
}

type generatePayload struct {
	EmployeeID      string       `json:"employeeId" validate:"required"`
	Month           string       `json:"month" validate:"required"`
	BaseSalary      money.Amount `json:"baseSalary" validate:"required"`
	Bonus           money.Amount `json:"bonus"`
	OvertimePay     money.Amount `json:"overtimePay"`
	Tax             money.Amount `json:"tax"`
	LeaveDeductions money.Amount `json:"leaveDeductions"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}
	if !monthPattern.MatchString(payload.Month) {
		api.Fail(w, http.StatusBadRequest, "month must be in YYYY-MM format")
		return
	}

	rec, err := h.Payroll.Generate(r.Context(), payload.EmployeeID, payload.Month, payroll.Components{
		BaseSalary:      float64(payload.BaseSalary),
		Bonus:           float64(payload.Bonus),
		OvertimePay:     float64(payload.OvertimePay),
		Tax:             float64(payload.Tax),
		LeaveDeductions: float64(payload.LeaveDeductions),
	})
	if errors.Is(err, payroll.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to generate payroll")
		return
	}
	shared.RecordAudit(r, h.Audit, "payroll.generate", "payroll", rec.ID,
		api.Payload{"employeeId": rec.EmployeeID, "month": rec.Month, "netPay": rec.NetPay})
	api.Success(w, http.StatusCreated, "payroll generated", api.Payload{"payroll": rec})
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.Payroll.ListAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list payroll records")
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"payrolls": records})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	records, err := h.Payroll.ListMine(r.Context(), user.AccountID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list payroll records")
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"payrolls": records})
}

// handlePayslip resolves and authorizes the record before rendering, so a
// miss never writes a partial document.
func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Payroll.Get(r.Context(), id)
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "payroll record not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load payroll record")
		return
	}

	user, _ := middleware.GetUser(r.Context())
	if !user.IsAdmin() && rec.EmployeeID != user.AccountID {
		api.Fail(w, http.StatusForbidden, "not allowed to download this payslip")
		return
	}

	pdf, err := payroll.RenderPayslip(rec)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to render payslip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", rec.Month))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
