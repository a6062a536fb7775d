package evaluationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/evaluations"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *evaluations.Service
	Self    shared.SelfLookup
	Audit   audit.Recorder
}

func NewHandler(service *evaluations.Service, self shared.SelfLookup, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Self: self, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleEmployee)).Get("/employees/me/evaluations", h.handleMine)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/evaluations", h.handleList)
		r.Post("/evaluations", h.handleCreate)
		r.Get("/evaluations/{id}", h.handleGet)
		r.Put("/evaluations/{id}", h.handleUpdate)
		r.Delete("/evaluations/{id}", h.handleDelete)
		r.Get("/employees/{id}/evaluations", h.handleForEmployee)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, evaluations.Table, rows)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, e, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload evaluations.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	e, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "evaluation", e.ID, nil, e)
	api.Created(w, e, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload evaluations.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	e, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionUpdate, "evaluation", id, nil, e)
	api.Success(w, e, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), id); err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionDelete, "evaluation", id, nil, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleForEmployee(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ForEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, evaluations.Table, rows)
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	emp, err := shared.CurrentEmployee(r, h.Self)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	rows, err := h.Service.ForEmployee(r.Context(), emp.ID)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, evaluations.Table, rows)
}
