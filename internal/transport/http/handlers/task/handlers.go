package taskhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/task"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Tasks *task.Store
}

func NewHandler(store *task.Store) *Handler {
	return &Handler{Tasks: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/my", h.handleListMine)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	tasks, err := h.Tasks.ListByAssignee(r.Context(), user.AccountID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"tasks": tasks})
}

type taskPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}
	if payload.Status == "" {
		payload.Status = task.StatusTodo
	}
	if !task.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "status must be one of To Do, In Progress, Done")
		return
	}

	created, err := h.Tasks.Create(r.Context(), user.AccountID, payload.Title, payload.Description, payload.Status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create task")
		return
	}
	api.Success(w, http.StatusCreated, "task created", api.Payload{"task": created})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}
	if !task.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "status must be one of To Do, In Progress, Done")
		return
	}

	updated, err := h.Tasks.Update(r.Context(), id, user.AccountID, payload.Title, payload.Description, payload.Status)
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	api.Success(w, http.StatusOK, "task updated", api.Payload{"task": updated})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	err := h.Tasks.Delete(r.Context(), id, user.AccountID)
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete task")
		return
	}
	api.Success(w, http.StatusOK, "task deleted", nil)
}
