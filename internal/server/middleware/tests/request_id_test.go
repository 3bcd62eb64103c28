package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/middleware"
)

// captureID возвращает хендлер, который сохраняет ID из контекста
func captureID(dst *string, ok *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dst, *ok = middleware.RequestIDFromContext(r.Context())
	})
}

// ID генерируется, если клиент его не прислал
func TestRequestID_Generated(t *testing.T) {
	var got string
	var ok bool
	handler := middleware.RequestID()(captureID(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.True(t, ok)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	require.Equal(t, got, rr.Header().Get(middleware.RequestIDHeader))
}

// ID клиента переиспользуется
func TestRequestID_FromHeader(t *testing.T) {
	var got string
	var ok bool
	handler := middleware.RequestID()(captureID(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "  abc-123 ")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.True(t, ok)
	require.Equal(t, "abc-123", got)
	require.Equal(t, "abc-123", rr.Header().Get(middleware.RequestIDHeader))
}

// слишком длинный ID заменяется
func TestRequestID_TooLong(t *testing.T) {
	var got string
	var ok bool
	handler := middleware.RequestID()(captureID(&got, &ok))

	long := strings.Repeat("x", 100)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, long)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.True(t, ok)
	require.NotEqual(t, long, got)
}

// без middleware ID нет
func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.RequestIDFromContext(req.Context())
	require.False(t, ok)
}
