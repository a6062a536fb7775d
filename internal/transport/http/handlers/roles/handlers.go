package roleshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/positions"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

// Handler serves job positions under /roles.
type Handler struct {
	Service *positions.Service
	Audit   audit.Recorder
}

func NewHandler(service *positions.Service, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/roles", h.handleList)
		r.Post("/roles", h.handleCreate)
		r.Get("/roles/{id}", h.handleGet)
		r.Put("/roles/{id}", h.handleUpdate)
		r.Delete("/roles/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, positions.Table, rows)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, p, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload positions.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	p, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "role", p.ID, nil, p)
	api.Created(w, p, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload positions.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	p, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionUpdate, "role", id, nil, p)
	api.Success(w, p, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	before, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionDelete, "role", id, before, nil)
	w.WriteHeader(http.StatusNoContent)
}
