package shared

import (
	"log/slog"
	"net/http"

	"ems/internal/domain/audit"
	"ems/internal/requestctx"
	"ems/internal/transport/http/middleware"
)

// RecordAudit writes an audit event for an admin mutation. Failures are
// logged, never surfaced: the mutation already succeeded.
func RecordAudit(r *http.Request, svc *audit.Service, action, entityType, entityID string, details any) {
	if svc == nil {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	err := svc.Record(r.Context(), user.AccountID, action, entityType, entityID,
		requestctx.GetRequestID(r.Context()), ClientIP(r), details)
	if err != nil {
		slog.Warn("audit record failed", "action", action, "error", err)
	}
}
