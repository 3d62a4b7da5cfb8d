package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// HeaderAdminID заголовок идентификатора администратора
const HeaderAdminID = "X-Admin-ID"

// Auth middleware аутентификации административных маршрутов
// Проверяет наличие заголовка X-Admin-ID и кладет его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(HeaderAdminID)
		if adminID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderAdminID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
