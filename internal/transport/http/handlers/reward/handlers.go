package rewardhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/audit"
	"ems/internal/domain/reward"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Rewards *reward.Store
	Audit   *audit.Service
}

func NewHandler(store *reward.Store, auditor *audit.Service) *Handler {
	return &Handler{Rewards: store, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/rewards", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireAdmin).Post("/", h.handleGive)
		r.With(middleware.RequireAdmin).Get("/", h.handleListAll)
		r.Get("/my", h.handleListMine)
		r.Get("/leaderboard", h.handleLeaderboard)
	})
}

type givePayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	RewardType string `json:"rewardType" validate:"required"`
}

func (h *Handler) handleGive(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload givePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	rw, err := h.Rewards.Give(r.Context(), payload.EmployeeID, payload.RewardType, user.AccountID)
	if errors.Is(err, reward.ErrUnknownEmployee) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to give reward")
		return
	}
	shared.RecordAudit(r, h.Audit, "reward.give", "reward", rw.ID, payload)
	api.Success(w, http.StatusCreated, "reward given", api.Payload{"reward": rw})
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.Rewards.ListAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list rewards")
		return
	}
	if rewards == nil {
		rewards = []reward.Reward{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"rewards": rewards})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	rewards, err := h.Rewards.ListByEmployee(r.Context(), user.AccountID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list rewards")
		return
	}
	if rewards == nil {
		rewards = []reward.Reward{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"rewards": rewards})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Rewards.Leaderboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	if entries == nil {
		entries = []reward.LeaderboardEntry{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"leaderboard": entries})
}
