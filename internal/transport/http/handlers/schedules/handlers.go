package scheduleshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/schedules"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *schedules.Service
	Self    shared.SelfLookup
	Audit   audit.Recorder
}

func NewHandler(service *schedules.Service, self shared.SelfLookup, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Self: self, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleEmployee)).Get("/employees/me/schedules", h.handleMine)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/schedules", h.handleList)
		r.Post("/schedules", h.handleCreate)
		r.Get("/schedules/{id}", h.handleGet)
		r.Put("/schedules/{id}", h.handleUpdate)
		r.Delete("/schedules/{id}", h.handleDelete)
		r.Post("/schedules/{id}/assign", h.handleAssign)
		r.Get("/employees/{id}/schedules", h.handleForEmployee)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, schedules.Table, rows)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, s, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload schedules.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	s, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "schedule", s.ID, nil, s)
	api.Created(w, s, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload schedules.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	s, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionUpdate, "schedule", id, nil, s)
	api.Success(w, s, requestctx.GetRequestID(r.Context()))
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
	shared.RecordAudit(r, h.Audit, audit.ActionDelete, "schedule", id, before, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload schedules.AssignInput
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	a, err := h.Service.Assign(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionAssign, "schedule", id, nil, a)
	api.Created(w, a, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleForEmployee(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ForEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, schedules.ShiftTable, rows)
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
	shared.WriteList(w, r, schedules.ShiftTable, rows)
}
