package shared

import (
	"net/http"

	"github.com/rs/zerolog"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/requestctx"
)

// RecordAudit stores a mutation made by the caller. Failures are logged and
// never fail the request.
func RecordAudit(r *http.Request, rec audit.Recorder, action, entityType, entityID string, before, after any) {
	if rec == nil {
		return
	}
	ctx := r.Context()
	user, _ := auth.UserFrom(ctx)
	err := rec.Record(ctx, audit.Entry{
		ActorID:    user.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestctx.GetRequestID(ctx),
		IP:         requestctx.GetClientIP(ctx),
		Before:     before,
		After:      after,
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("action", action).Str("entity", entityType).Msg("audit record failed")
	}
}
