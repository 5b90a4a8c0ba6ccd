package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/account"
	"ems/internal/domain/audit"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Accounts *account.Service
	Audit    *audit.Service
}

func NewHandler(accounts *account.Service, auditor *audit.Service) *Handler {
	return &Handler{Accounts: accounts, Audit: auditor}
}

// Routes are registered on the parent router so the per-employee salary
// listing can live under the same /employees prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := r.With(middleware.RequireAuth, middleware.RequireAdmin)
	admin.Get("/employees", h.handleList)
	admin.Post("/employees", h.handleCreate)
	admin.Get("/employees/{id}", h.handleGet)
	admin.Put("/employees/{id}", h.handleUpdate)
	admin.Delete("/employees/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Accounts.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []account.Account{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"employees": employees})
}

type createEmployeePayload struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	DepartmentID string `json:"departmentId"`
	Position     string `json:"position"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createEmployeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	var departmentID *string
	if payload.DepartmentID != "" {
		departmentID = &payload.DepartmentID
	}

	emp, err := h.Accounts.AddEmployee(r.Context(), payload.Name, payload.Email, payload.Password, departmentID, payload.Position)
	if errors.Is(err, account.ErrEmailTaken) {
		api.Fail(w, http.StatusBadRequest, "an account with this email already exists")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create employee")
		return
	}
	shared.RecordAudit(r, h.Audit, "employee.create", "employee", emp.ID, api.Payload{"email": payload.Email})
	api.Success(w, http.StatusCreated, "employee created", api.Payload{"employee": emp})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Accounts.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, account.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	api.Success(w, http.StatusOK, "", api.Payload{"employee": emp})
}

type updateEmployeePayload struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	DepartmentID string `json:"departmentId"`
	Position     string `json:"position"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload updateEmployeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	var departmentID *string
	if payload.DepartmentID != "" {
		departmentID = &payload.DepartmentID
	}

	emp, err := h.Accounts.UpdateEmployee(r.Context(), id, account.EmployeeUpdate{
		Name:         payload.Name,
		Email:        payload.Email,
		DepartmentID: departmentID,
		Position:     payload.Position,
	})
	if errors.Is(err, account.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if errors.Is(err, account.ErrEmailTaken) {
		api.Fail(w, http.StatusBadRequest, "an account with this email already exists")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update employee")
		return
	}
	shared.RecordAudit(r, h.Audit, "employee.update", "employee", id, payload)
	api.Success(w, http.StatusOK, "employee updated", api.Payload{"employee": emp})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Accounts.DeleteEmployee(r.Context(), id)
	if errors.Is(err, account.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	shared.RecordAudit(r, h.Audit, "employee.delete", "employee", id, nil)
	api.Success(w, http.StatusOK, "employee deleted", nil)
}
