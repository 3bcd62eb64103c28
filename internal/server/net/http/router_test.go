package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/config"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockRecordsRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	// --- arrange: mocks ---
	repo := svcmocks.NewMockRecordsRepo(ctrl)

	// --- arrange: cfg ---
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	// --- arrange: real service + handler + router ---
	svc := service.NewServices(service.Repositories{Records: repo}, cfg, logger.Nop())
	h := api.NewHandler(svc, logger.Nop(), cfg.Server.MaxBodyBytes)
	return NewRouter(h), repo
}

func TestRouter_Transform_OK(t *testing.T) {
	router, repo := newTestRouter(t)

	var saved models.CipherRecord
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.CipherRecord) error {
			saved = rec
			return nil
		})

	// --- act ---
	body, _ := json.Marshal(models.TransformRequest{
		Cipher:    "railfence",
		Direction: "encrypt",
		Text:      "WEAREDISCOVERED",
		Key:       "3",
	})

	req := httptest.NewRequest(http.MethodPost, "/cipher/transform", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// --- assert ---
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var resp models.TransformResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "WECRERDSOEEAIVD", resp.Record.ResultText)
	require.Equal(t, saved.ID, resp.Record.ID)
}

func TestRouter_HistoryRoutes(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().List(gomock.Any(), 20).Return([]models.CipherRecord{{ID: "1"}}, nil)
	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/history", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().Ping(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cipher/transform", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
