package salaryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/salary"
	"ems/internal/money"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Salaries *salary.Store
	Audit    *audit.Service
}

func NewHandler(store *salary.Store, auditor *audit.Service) *Handler {
	return &Handler{Salaries: store, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Get("/", h.handleListAll)
		r.Get("/my", h.handleListMine)
	})
	r.With(middleware.RequireAuth, middleware.RequireAdmin).
		Get("/employees/{id}/salaries", h.handleListByEmployee)
}

type salaryPayload struct {
	EmployeeID   string       `json:"employeeId" validate:"required"`
	DepartmentID string       `json:"departmentId" validate:"required"`
	BasicSalary  money.Amount `json:"basicSalary" validate:"required"`
	Allowances   money.Amount `json:"allowances"`
	Deductions   money.Amount `json:"deductions"`
	PayDate      string       `json:"payDate" validate:"required"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload salaryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	payDate, err := shared.ParseDate(payload.PayDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "payDate must be a valid date in YYYY-MM-DD format")
		return
	}

	rec, err := h.Salaries.Create(r.Context(), salary.NewRecord{
		EmployeeID:   payload.EmployeeID,
		DepartmentID: payload.DepartmentID,
		BasicSalary:  float64(payload.BasicSalary),
		Allowances:   float64(payload.Allowances),
		Deductions:   float64(payload.Deductions),
		PayDate:      payDate,
	})
	if errors.Is(err, salary.ErrBadReference) {
		api.Fail(w, http.StatusNotFound, "employee or department not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add salary record")
		return
	}
	shared.RecordAudit(r, h.Audit, "salary.create", "salary", rec.ID,
		api.Payload{"employeeId": rec.EmployeeID, "totalSalary": rec.TotalSalary})
	api.Success(w, http.StatusCreated, "salary record added", api.Payload{"salary": rec})
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.Salaries.ListAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list salaries")
		return
	}
	if records == nil {
		records = []salary.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"salaries": records})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	records, err := h.Salaries.ListByEmployee(r.Context(), user.AccountID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list salaries")
		return
	}
	if records == nil {
		records = []salary.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"salaries": records})
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	records, err := h.Salaries.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list salaries")
		return
	}
	if records == nil {
		records = []salary.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"salaries": records})
}
