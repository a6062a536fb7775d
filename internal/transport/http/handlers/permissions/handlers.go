package permissionshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/permissions"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *permissions.Service
	Self    shared.SelfLookup
	Audit   audit.Recorder
}

func NewHandler(service *permissions.Service, self shared.SelfLookup, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Self: self, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleEmployee)).Get("/employees/me/permissions", h.handleMine)
	r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleEmployee)).Post("/permissions", h.handleCreate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/permissions", h.handleList)
		r.Get("/permissions/{id}", h.handleGet)
		r.Put("/permissions/{id}", h.handleUpdate)
		r.Put("/permissions/{id}/approve", h.handleApprove)
		r.Put("/permissions/{id}/reject", h.handleReject)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, permissions.Table, rows)
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
	shared.WriteList(w, r, permissions.Table, rows)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, req, requestctx.GetRequestID(r.Context()))
}

// handleCreate files a request. Employees always file for themselves.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload permissions.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	if user, _ := auth.UserFrom(r.Context()); user.Role != auth.RoleAdmin {
		emp, err := shared.CurrentEmployee(r, h.Self)
		if err != nil {
			shared.FailError(w, r, err)
			return
		}
		payload.EmployeeID = emp.ID
	}
	req, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "permission", req.ID, nil, req)
	api.Created(w, req, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload permissions.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	req, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionUpdate, "permission", id, nil, req)
	api.Success(w, req, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, audit.ActionApprove, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, audit.ActionReject, h.Service.Reject)
}

type decideFunc func(ctx context.Context, id, decidedBy string, d permissions.Decision) (permissions.Request, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, action string, fn decideFunc) {
	id := chi.URLParam(r, "id")
	var payload permissions.Decision
	if r.ContentLength != 0 && !shared.DecodeJSON(w, r, &payload) {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	req, err := fn(r.Context(), id, user.UserID, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, action, "permission", id, nil, req)
	api.Success(w, req, requestctx.GetRequestID(r.Context()))
}
