package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/dashboard"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Dashboard *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{Dashboard: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth, middleware.RequireAdmin).
		Get("/dashboard/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}
	api.Success(w, http.StatusOK, "", api.Payload{"stats": stats})
}
