package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/attendance"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Attendance: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", h.handleMark)
		r.Get("/{date}", h.handleByDate)
	})
}

type markPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	var payload markPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	day, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "date must be a valid date in YYYY-MM-DD format")
		return
	}

	// Employees record their own attendance; admins may record anyone's.
	user, _ := middleware.GetUser(r.Context())
	if !user.IsAdmin() && payload.EmployeeID != user.AccountID {
		api.Fail(w, http.StatusForbidden, "cannot mark attendance for another employee")
		return
	}

	rec, err := h.Attendance.Mark(r.Context(), payload.EmployeeID, day, payload.Status)
	if errors.Is(err, attendance.ErrUnknownEmployee) {
		api.Fail(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to mark attendance")
		return
	}
	api.Success(w, http.StatusOK, "attendance recorded", api.Payload{"attendance": rec})
}

func (h *Handler) handleByDate(w http.ResponseWriter, r *http.Request) {
	day, err := shared.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "date must be a valid date in YYYY-MM-DD format")
		return
	}

	statuses, err := h.Attendance.ByDay(r.Context(), day)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load attendance")
		return
	}
	if statuses == nil {
		statuses = map[string]string{}
	}
	api.Success(w, http.StatusOK, "", api.Payload{"attendance": statuses})
}
