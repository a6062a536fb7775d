package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/auth"
	"workwise/internal/domain/reports"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
	Self    shared.SelfLookup
}

func NewHandler(service *reports.Service, self shared.SelfLookup) *Handler {
	return &Handler{Reports: service, Self: self}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleAdmin)).Get("/dashboard", h.handleAdmin)
	r.With(middleware.RequireRole()).Get("/employees/me/summary", h.handleMine)
}

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reports.Admin(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	emp, err := shared.CurrentEmployee(r, h.Self)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	out, err := h.Reports.Employee(r.Context(), emp)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}
