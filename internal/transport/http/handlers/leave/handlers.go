package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/leave"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Leave *leave.Service
	Audit *audit.Service
}

func NewHandler(svc *leave.Service, auditor *audit.Service) *Handler {
	return &Handler{Leave: svc, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", h.handleApply)
		r.Get("/my", h.handleListMine)
		r.With(middleware.RequireAdmin).Get("/", h.handleListAll)
		r.With(middleware.RequireAdmin).Put("/{id}/status", h.handleDecide)
	})
}

type applyPayload struct {
	LeaveType string `json:"leaveType" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload applyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "startDate must be a valid date in YYYY-MM-DD format")
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "endDate must be a valid date in YYYY-MM-DD format")
		return
	}

	req, err := h.Leave.Apply(r.Context(), user.AccountID, payload.LeaveType, start, end, payload.Reason)
	if errors.Is(err, leave.ErrInvalidRange) {
		api.Fail(w, http.StatusBadRequest, "endDate must not be before startDate")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to submit leave request")
		return
	}
	api.Success(w, http.StatusCreated, "leave request submitted", api.Payload{"leave": req})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	requests, err := h.Leave.ListMine(r.Context(), user.AccountID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"leaves": requests})
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Leave.ListAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"leaves": requests})
}

type decidePayload struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload decidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !leave.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "status must be Pending, Approved or Rejected")
		return
	}

	req, err := h.Leave.Decide(r.Context(), id, payload.Status)
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "leave request not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update leave request")
		return
	}
	shared.RecordAudit(r, h.Audit, "leave.decide", "leave", id, payload)
	api.Success(w, http.StatusOK, "leave request updated", api.Payload{"leave": req})
}
