package onboardinghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/onboarding"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Onboarding *onboarding.Store
	Audit      *audit.Service
}

func NewHandler(store *onboarding.Store, auditor *audit.Service) *Handler {
	return &Handler{Onboarding: store, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/onboarding", func(r chi.Router) {
		r.Use(middleware.RequireAuth, middleware.RequireAdmin)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}/complete", h.handleComplete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Onboarding.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list onboarding records")
		return
	}
	if records == nil {
		records = []onboarding.Record{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"onboarding": records})
}

type onboardingPayload struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	JoinDate   string `json:"joinDate"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload onboardingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	var joinDate *time.Time
	if payload.JoinDate != "" {
		parsed, err := shared.ParseDate(payload.JoinDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "joinDate must be a valid date in YYYY-MM-DD format")
			return
		}
		joinDate = &parsed
	}

	rec, err := h.Onboarding.Create(r.Context(), payload.Name, payload.Department, joinDate)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create onboarding record")
		return
	}
	shared.RecordAudit(r, h.Audit, "onboarding.create", "onboarding", rec.ID, payload)
	api.Success(w, http.StatusCreated, "onboarding record created", api.Payload{"record": rec})
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Onboarding.MarkComplete(r.Context(), id)
	if errors.Is(err, onboarding.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "onboarding record not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update onboarding record")
		return
	}
	shared.RecordAudit(r, h.Audit, "onboarding.complete", "onboarding", id, nil)
	api.Success(w, http.StatusOK, "onboarding completed", nil)
}
