package departmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/account"
	"ems/internal/domain/audit"
	"ems/internal/domain/department"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Departments *department.Store
	Accounts    *account.Service
	Audit       *audit.Service
}

func NewHandler(departments *department.Store, accounts *account.Service, auditor *audit.Service) *Handler {
	return &Handler{Departments: departments, Accounts: accounts, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Put("/{id}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{id}", h.handleDelete)
		r.With(middleware.RequireAdmin).Get("/{id}/employees", h.handleEmployees)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Departments.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list departments")
		return
	}
	if departments == nil {
		departments = []department.Department{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"departments": departments})
}

type departmentPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload departmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	dep, err := h.Departments.Create(r.Context(), payload.Name, payload.Description)
	if errors.Is(err, department.ErrNameTaken) {
		api.Fail(w, http.StatusConflict, "department already exists")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create department")
		return
	}
	shared.RecordAudit(r, h.Audit, "department.create", "department", dep.ID, payload)
	api.Success(w, http.StatusCreated, "department created", api.Payload{"department": dep})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload departmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	dep, err := h.Departments.Update(r.Context(), id, payload.Name, payload.Description)
	if errors.Is(err, department.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "department not found")
		return
	}
	if errors.Is(err, department.ErrNameTaken) {
		api.Fail(w, http.StatusConflict, "department already exists")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update department")
		return
	}
	shared.RecordAudit(r, h.Audit, "department.update", "department", id, payload)
	api.Success(w, http.StatusOK, "department updated", api.Payload{"department": dep})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Departments.Delete(r.Context(), id)
	if errors.Is(err, department.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "department not found")
		return
	}
	if errors.Is(err, department.ErrInUse) {
		api.Fail(w, http.StatusConflict, "department has salary records and cannot be deleted")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete department")
		return
	}
	shared.RecordAudit(r, h.Audit, "department.delete", "department", id, nil)
	api.Success(w, http.StatusOK, "department deleted", nil)
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.Departments.Find(r.Context(), id); err != nil {
		if errors.Is(err, department.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "department not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to load department")
		return
	}

	employees, err := h.Accounts.ListEmployeesByDepartment(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []account.Account{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"employees": employees})
}
