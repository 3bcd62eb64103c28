package tests

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/config"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/repository"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
)

var testPolicy = config.HistoryConfig{
	Store:        config.StoreMemory,
	Capacity:     10,
	DefaultLimit: 5,
	MaxLimit:     10,
	MaxTextBytes: 64,
}

// routes собирает минимальный роутер с URL-параметрами как в проде
func routes(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/cipher/transform", h.Transform)
	r.Get("/cipher/playfair/matrix", h.Matrix)
	r.Get("/history", h.ListHistory)
	r.Delete("/history", h.ClearHistory)
	r.Get("/history/{id}", h.GetRecord)
	r.Delete("/history/{id}", h.DeleteRecord)
	r.Get("/health", h.Health)
	return r
}

// handler на настоящем in-memory хранилище
func newMemoryHandler(t *testing.T) http.Handler {
	t.Helper()
	repo := repository.NewMemoryRecords(testPolicy.Capacity)
	svc := &service.Services{Cipher: service.NewCipherService(repo, testPolicy, logger.Nop())}
	return routes(api.NewHandler(svc, logger.Nop(), 1024))
}

// handler на моке хранилища
func newMockHandler(t *testing.T) (http.Handler, *mocks.MockRecordsRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRecordsRepo(ctrl)
	svc := &service.Services{Cipher: service.NewCipherService(repo, testPolicy, logger.Nop())}
	return routes(api.NewHandler(svc, nil, 1024)), repo
}
