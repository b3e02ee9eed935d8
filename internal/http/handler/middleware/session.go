package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SessionCookie is the cookie the login endpoint sets and every protected
// route reads.
const SessionCookie = "todo_session"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	Resolve(token string) (uint, bool)
}

type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionResolver
}

func NewSessionMiddleware(logger *zap.SugaredLogger, sessions SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		sessions: sessions,
	}
}

// Require rejects requests without a live session before any handler logic
// runs, and puts the resolved identity and raw token on the context.
func (m *SessionMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			m.reject(w, r)
			return
		}

		userID, ok := m.sessions.Resolve(cookie.Value)
		if !ok {
			m.reject(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, SessionTokenKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) reject(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	m.logs.Infow("unauthenticated request rejected",
		"path", r.URL.Path,
		"request_id", requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "error",
		"message": "authentication required",
		"code":    http.StatusUnauthorized,
	})
}
