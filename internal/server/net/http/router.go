// Package http реализует маршрутизацию HTTP-слоя сервера шифров.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (request id, логирование запросов);
//   - раздачу документации swagger.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware request id и логирования для всех запросов;
//   - операции шифрования под префиксом /cipher;
//   - историю операций под префиксом /history;
//   - /health и /swagger/*.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", h.Health)

	r.Route("/cipher", func(r chi.Router) {
		r.Post("/transform", h.Transform)   // шифрование и расшифровка
		r.Get("/playfair/matrix", h.Matrix) // матрица Playfair по ?key
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.ListHistory)         // последние операции, ?limit
		r.Delete("/", h.ClearHistory)     // очистить всё
		r.Get("/{id}", h.GetRecord)       // одна запись
		r.Delete("/{id}", h.DeleteRecord) // удалить одну запись
	})

	return r
}
