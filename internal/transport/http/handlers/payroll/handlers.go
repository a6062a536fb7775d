package payrollhandler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/payroll"
	"workwise/internal/platform/pdf"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Self    shared.SelfLookup
	Audit   audit.Recorder
}

func NewHandler(service *payroll.Service, self shared.SelfLookup, recorder audit.Recorder) *Handler {
	return &Handler{Service: service, Self: self, Audit: recorder}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleEmployee)).Get("/employees/me/payrolls", h.handleMine)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleEmployee))
		r.Get("/payrolls/{id}", h.handleGet)
		r.Get("/payrolls/{id}/payslip.pdf", h.handlePayslip)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/payrolls", h.handleList)
		r.Post("/payrolls", h.handleCreate)
		r.Get("/employees/{id}/payrolls", h.handleForEmployee)
		r.Post("/payrolls/{id}/adjustments", h.handleAddAdjustment)
		r.Delete("/payrolls/{id}/adjustments/{adjID}", h.handleRemoveAdjustment)
	})
}

// lookup returns any payroll to an admin and only their own to an employee.
func (h *Handler) lookup(r *http.Request, id string) (payroll.Payroll, error) {
	user, _ := auth.UserFrom(r.Context())
	if user.Role == auth.RoleAdmin {
		return h.Service.Get(r.Context(), id)
	}
	emp, err := shared.CurrentEmployee(r, h.Self)
	if err != nil {
		return payroll.Payroll{}, err
	}
	return h.Service.GetForEmployee(r.Context(), id, emp.ID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, payroll.Table, rows)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.lookup(r, chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	api.Success(w, p, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload payroll.Input
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	p, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "payroll", p.ID, nil, p)
	api.Created(w, p, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleForEmployee(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ForEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.WriteList(w, r, payroll.Table, rows)
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
	shared.WriteList(w, r, payroll.Table, rows)
}

func (h *Handler) handleAddAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload payroll.AdjustmentInput
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	adj, err := h.Service.AddAdjustment(r.Context(), id, payload)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionCreate, "payroll_adjustment", adj.ID, nil, adj)
	api.Created(w, adj, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveAdjustment(w http.ResponseWriter, r *http.Request) {
	adjID := chi.URLParam(r, "adjID")
	if err := h.Service.RemoveAdjustment(r.Context(), chi.URLParam(r, "id"), adjID); err != nil {
		shared.FailError(w, r, err)
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionDelete, "payroll_adjustment", adjID, nil, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	p, err := h.lookup(r, chi.URLParam(r, "id"))
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := pdf.WritePayslip(&buf, p); err != nil {
		shared.FailError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+p.ID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
