package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
)

// SessionHeader заголовок с идентификатором сессии клиента
const SessionHeader = "X-Session-ID"

const maxSessionIDLength = 128

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session требует заголовок X-Session-ID и кладет его в контекст
// Сессия - единственный владелец брони и сохраненных пакетов
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sessionID == "" {
			handlers.RespondUnauthorized(w, "missing "+SessionHeader+" header")
			return
		}
		if len(sessionID) > maxSessionIDLength {
			handlers.RespondBadRequest(w, "invalid "+SessionHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
