package recruitmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/recruitment"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Recruitment *recruitment.Store
	Audit       *audit.Service
}

func NewHandler(store *recruitment.Store, auditor *audit.Service) *Handler {
	return &Handler{Recruitment: store, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/recruitment", func(r chi.Router) {
		r.Use(middleware.RequireAuth, middleware.RequireAdmin)
		r.Get("/jobs", h.handleListJobs)
		r.Post("/jobs", h.handleCreateJob)
		r.Get("/applicants", h.handleListApplicants)
		r.Put("/applicants/{id}/stage", h.handleUpdateStage)
		r.Delete("/applicants/{id}", h.handleDeleteApplicant)
	})
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Recruitment.ListJobs(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []recruitment.Job{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"jobs": jobs})
}

type jobPayload struct {
	Title       string   `json:"title" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Location    string   `json:"location"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (h *Handler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var payload jobPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	id, err := h.Recruitment.CreateJob(r.Context(), recruitment.Job{
		Title:       payload.Title,
		Department:  payload.Department,
		Location:    payload.Location,
		Experience:  payload.Experience,
		Description: payload.Description,
		Skills:      payload.Skills,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	shared.RecordAudit(r, h.Audit, "job.create", "job", id, api.Payload{"title": payload.Title})
	api.Success(w, http.StatusCreated, "job posted", api.Payload{"id": id})
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	applicants, err := h.Recruitment.ListApplicants(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list applicants")
		return
	}
	if applicants == nil {
		applicants = []recruitment.Applicant{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"applicants": applicants})
}

type stagePayload struct {
	Stage string `json:"stage" validate:"required"`
}

func (h *Handler) handleUpdateStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload stagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !recruitment.ValidStage(payload.Stage) {
		api.Fail(w, http.StatusBadRequest, "stage must be one of new, shortlisted, interview, hired")
		return
	}

	err := h.Recruitment.UpdateStage(r.Context(), id, payload.Stage)
	if errors.Is(err, recruitment.ErrApplicantNotFound) {
		api.Fail(w, http.StatusNotFound, "applicant not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update applicant")
		return
	}
	shared.RecordAudit(r, h.Audit, "applicant.stage", "applicant", id, payload)
	api.Success(w, http.StatusOK, "applicant updated", nil)
}

func (h *Handler) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Recruitment.DeleteApplicant(r.Context(), id)
	if errors.Is(err, recruitment.ErrApplicantNotFound) {
		api.Fail(w, http.StatusNotFound, "applicant not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete applicant")
		return
	}
	shared.RecordAudit(r, h.Audit, "applicant.delete", "applicant", id, nil)
	api.Success(w, http.StatusOK, "applicant removed", nil)
}
