package authhandler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/domain/auth"
	"workwise/internal/platform/metrics"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
	Metrics *metrics.Collector
	// LoginLimit is the number of login attempts per client IP and minute.
	LoginLimit int
}

func NewHandler(service *auth.Service, m *metrics.Collector, loginLimit int) *Handler {
	return &Handler{Service: service, Metrics: m, LoginLimit: loginLimit}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	limit := h.LoginLimit
	if limit <= 0 {
		limit = 10
	}
	r.With(middleware.RateLimit(limit, time.Minute, middleware.OnReject(func(*http.Request) {
		h.Metrics.LoginAttempt(metrics.LoginRateLimited)
	}))).Post("/auth/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole())
		r.Post("/auth/logout", h.HandleLogout)
		r.Get("/me", h.HandleMe)
		r.Post("/auth/mfa/setup", h.HandleSetupMFA)
		r.Post("/auth/mfa/enable", h.HandleEnableMFA)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type mfaCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	log := zerolog.Ctx(r.Context())
	username := strings.TrimSpace(payload.Username)

	identity, err := h.Service.Verify(r.Context(), username, payload.Password, payload.Code)
	if err != nil {
		h.Metrics.LoginAttempt(loginOutcome(err))
		log.Info().Err(err).Str("username", username).Msg("login rejected")
		shared.FailError(w, r, err)
		return
	}

	token, expires, err := h.Service.IssueToken(identity)
	if err != nil {
		h.Metrics.LoginAttempt(metrics.LoginError)
		shared.FailError(w, r, err)
		return
	}
	h.Metrics.LoginAttempt(metrics.LoginSuccess)
	log.Info().Str("user_id", identity.SubjectID).Str("role", identity.Role.String()).Msg("login succeeded")

	api.Success(w, map[string]any{
		"token":     token,
		"expiresAt": expires,
		"user":      identity,
	}, requestctx.GetRequestID(r.Context()))
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, apperr.ErrMFARequired):
		return metrics.LoginMFARequired
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrInvalidInput):
		return metrics.LoginInvalid
	}
	return metrics.LoginError
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	if err := h.Service.Revoke(r.Context(), user); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("token revoke failed")
	} else {
		h.Metrics.SessionRevoked()
	}
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	stored, err := h.Service.Store.GetUser(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = apperr.ErrUnauthorized
		}
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, auth.Identity{
		SubjectID:   stored.ID,
		Username:    stored.Username,
		DisplayName: stored.DisplayName,
		Role:        stored.Role,
		EmployeeID:  stored.EmployeeID,
	}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleSetupMFA(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	secret, url, err := h.Service.SetupMFA(r.Context(), user)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"secret": secret, "otpauthUrl": url}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleEnableMFA(w http.ResponseWriter, r *http.Request) {
	var payload mfaCodeRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	if err := h.Service.EnableMFA(r.Context(), user, payload.Code); err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, map[string]bool{"mfaEnabled": true}, requestctx.GetRequestID(r.Context()))
}
