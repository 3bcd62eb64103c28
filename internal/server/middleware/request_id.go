package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// requestIDKey — ключ контекста, под которым хранится ID запроса.
const requestIDKey ctxKey = "request_id"

// RequestIDHeader — заголовок, в котором приходит и возвращается ID запроса.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen ограничивает длину чужого ID, чтобы не тащить в логи мусор.
const maxRequestIDLen = 64

// RequestIDFromContext извлекает ID запроса из контекста.
//
// Возвращает:
//   - requestID
//   - false, если middleware RequestID не применялся
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	s, ok := v.(string)
	return s, ok
}

// RequestID возвращает middleware, которое:
//   - берёт ID из заголовка X-Request-ID, если он есть и не длиннее 64 символов;
//   - иначе генерирует новый UUID;
//   - сохраняет ID в context.Context и возвращает его в заголовке ответа.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
