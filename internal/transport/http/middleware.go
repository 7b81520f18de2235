package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gymtrack/internal/domain"
	"gymtrack/internal/observability/metrics"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

const (
	sessionCookieName = "session_id"
	requestRateWindow = time.Minute
)

// requireSession rejects requests without a live session before any handler
// runs, and stores the resolved identity on the request context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			metrics.SessionValidationsTotal.WithLabelValues("missing").Inc()
			writeError(w, domain.ErrInvalidSession)
			return
		}
		identity, err := h.sessions.Validate(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidSession) {
				metrics.SessionValidationsTotal.WithLabelValues("invalid").Inc()
			} else {
				metrics.SessionValidationsTotal.WithLabelValues("error").Inc()
			}
			writeError(w, err)
			return
		}
		metrics.SessionValidationsTotal.WithLabelValues("ok").Inc()

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(ctx context.Context) *domain.Identity {
	if id, ok := ctx.Value(ctxKeyIdentity).(*domain.Identity); ok {
		return id
	}
	return nil
}
