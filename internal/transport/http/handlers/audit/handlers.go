package audithandler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
	"workwise/internal/transport/http/middleware"
	"workwise/internal/transport/http/shared"
)

type Handler struct {
	Service *audit.Service
}

func NewHandler(service *audit.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/audit", h.handleList)
		r.Get("/audit/export.csv", h.handleExport)
	})
}

func filterFrom(r *http.Request) audit.Filter {
	q := r.URL.Query()
	return audit.Filter{
		Action:     q.Get("action"),
		EntityType: q.Get("entityType"),
		ActorUser:  q.Get("actorUserId"),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, audit.DefaultLimit, audit.MaxLimit)
	out, err := h.Service.List(r.Context(), filterFrom(r), shared.ParseBool(r, "includeDetails"), page.Limit, page.Offset)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(out.Total))
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.List(r.Context(), filterFrom(r), false, audit.MaxLimit, 0)
	if err != nil {
		shared.FailError(w, r, err)
		return
	}

	log := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=audit-events.csv")
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "actor_user_id", "action", "entity_type", "entity_id", "request_id", "ip", "created_at"}); err != nil {
		log.Warn().Err(err).Msg("audit export header failed")
	}
	for _, evt := range out.Events {
		if err := writer.Write([]string{evt.ID, evt.ActorID, evt.Action, evt.EntityType, evt.EntityID, evt.RequestID, evt.IP, evt.CreatedAt.Format(time.RFC3339)}); err != nil {
			log.Warn().Err(err).Msg("audit export row failed")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Warn().Err(err).Msg("audit export flush failed")
	}
}
