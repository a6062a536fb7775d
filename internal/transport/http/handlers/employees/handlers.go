package employeeshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/listing"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Service *employees.Service
	Audit   audit.Recorder
}

func NewHandler(service *employees.Service, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole()).Get("/employees/me", h.handleMe)
	r.With(middleware.RequireRole()).Get("/employees/profile", h.handleMe)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/employees", h.handleList)
		r.Post("/employees", h.handleCreate)
		r.Get("/employees/export.xlsx", h.handleExport)
		r.Get("/employees/{id}", h.handleGet)
		r.Put("/employees/{id}", h.handleUpdate)
		r.Delete("/employees/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, employees.Table, rows)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	rows = employees.Table.Apply(rows, listing.ParseQuery(r))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	if err := listing.WriteXLSX(w, "Employees", employees.Table, rows); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("employee export failed")
	}
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	emp, err := shared.CurrentEmployee(r, h.Service)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, emp, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, emp, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employees.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	emp, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "employee", emp.ID, nil, emp)
	api.Created(w, emp, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	before, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	var payload employees.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	emp, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionUpdate, "employee", id, before, emp)
	api.Success(w, emp, requestctx.GetRequestID(r.Context()))
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
	shared.RecordAudit(r, h.Audit, audit.ActionDelete, "employee", id, before, nil)
	w.WriteHeader(http.StatusNoContent)
}
