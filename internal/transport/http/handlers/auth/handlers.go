package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/auth"
	"ems/internal/domain/account"
	"ems/internal/platform/config"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Accounts *account.Service
	Cfg      config.Config

	// LoginLimit throttles credential-guessing on the login endpoint.
	LoginLimit func(http.Handler) http.Handler
}

func NewHandler(accounts *account.Service, cfg config.Config, loginLimit func(http.Handler) http.Handler) *Handler {
	return &Handler{Accounts: accounts, Cfg: cfg, LoginLimit: loginLimit}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.With(h.LoginLimit).Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.With(middleware.RequireAuth).Get("/profile", h.handleProfile)
		r.With(middleware.RequireAuth).Put("/profile", h.handleUpdateProfile)
		r.With(middleware.RequireAuth).Put("/password", h.handleChangePassword)
	})
}

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	acct, err := h.Accounts.Register(r.Context(), payload.Name, payload.Email, payload.Password)
	if errors.Is(err, account.ErrEmailTaken) {
		api.Fail(w, http.StatusBadRequest, "user already exists")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := h.issueToken(acct)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "registration failed")
		return
	}
	h.setTokenCookie(w, token)
	api.Success(w, http.StatusCreated, "user registered successfully", api.Payload{"token": token, "user": acct})
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	acct, err := h.Accounts.Authenticate(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, account.ErrInvalidCredentials) {
		api.Fail(w, http.StatusBadRequest, "invalid email or password")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := h.issueToken(acct)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login failed")
		return
	}
	h.setTokenCookie(w, token)
	api.Success(w, http.StatusOK, "login successful", api.Payload{"token": token, "user": acct})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	api.Success(w, http.StatusOK, "logged out successfully", nil)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	acct, err := h.Accounts.Get(r.Context(), user.AccountID)
	if errors.Is(err, account.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	api.Success(w, http.StatusOK, "", api.Payload{"user": acct})
}

type profilePayload struct {
	Name string `json:"name" validate:"required"`
	DOB  string `json:"dob"`
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	var dob *time.Time
	if payload.DOB != "" {
		parsed, err := shared.ParseDate(payload.DOB)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "dob must be a valid date in YYYY-MM-DD format")
			return
		}
		dob = &parsed
	}

	acct, err := h.Accounts.UpdateProfile(r.Context(), user.AccountID, payload.Name, dob)
	if errors.Is(err, account.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	api.Success(w, http.StatusOK, "profile updated", api.Payload{"user": acct})
}

type passwordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload passwordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if issue := shared.FirstIssue(payload); issue != "" {
		api.Fail(w, http.StatusBadRequest, issue)
		return
	}

	err := h.Accounts.ChangePassword(r.Context(), user.AccountID, payload.CurrentPassword, payload.NewPassword)
	if errors.Is(err, account.ErrInvalidCredentials) {
		api.Fail(w, http.StatusBadRequest, "current password is incorrect")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to change password")
		return
	}
	api.Success(w, http.StatusOK, "password changed", nil)
}

func (h *Handler) issueToken(acct account.Account) (string, error) {
	return auth.GenerateToken(h.Cfg.JWTSecret, auth.Claims{
		AccountID: acct.ID,
		Name:      acct.Name,
		Role:      acct.Role,
	}, h.Cfg.TokenTTL)
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.IsProduction(),
	})
}
