package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func listHistory(t *testing.T, h http.Handler, target string) []models.CipherRecord {
	t.Helper()
	rr := do(h, http.MethodGet, target)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp models.HistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Records
}

// Полный цикл: шифруем, читаем историю, удаляем запись, чистим
func TestHistory_Lifecycle(t *testing.T) {
	h := newMemoryHandler(t)

	require.Empty(t, listHistory(t, h, "/history"))

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		rr := postTransform(t, h, models.TransformRequest{Cipher: "caesar", Direction: "encrypt", Text: text, Key: "1"})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	records := listHistory(t, h, "/history")
	require.Len(t, records, 3)
	require.Equal(t, "three", records[0].OriginalText)
	require.Equal(t, "one", records[2].OriginalText)

	records = listHistory(t, h, "/history?limit=1")
	require.Len(t, records, 1)

	id := records[0].ID
	rr := do(h, http.MethodGet, "/history/"+id)
	require.Equal(t, http.StatusOK, rr.Code)
	var rec models.CipherRecord
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&rec))
	require.Equal(t, "uisff", rec.ResultText)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/history/"+id).Code)
	require.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/history/"+id).Code)
	require.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/history/"+id).Code)

	require.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/history").Code)
	require.Empty(t, listHistory(t, h, "/history"))
}

func TestHistory_InvalidLimit(t *testing.T) {
	h := newMemoryHandler(t)

	require.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/history?limit=abc").Code)
	require.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/history?limit=-1").Code)
}

func TestHistory_LimitClampedByPolicy(t *testing.T) {
	h, repo := newMockHandler(t)

	repo.EXPECT().List(gomock.Any(), testPolicy.MaxLimit).Return(nil, nil)
	require.Empty(t, listHistory(t, h, "/history?limit=1000"))

	repo.EXPECT().List(gomock.Any(), testPolicy.DefaultLimit).Return(nil, nil)
	require.Empty(t, listHistory(t, h, "/history"))
}

func TestHistory_InvalidID(t *testing.T) {
	h := newMemoryHandler(t)

	require.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/history/not-a-uuid").Code)
	require.Equal(t, http.StatusBadRequest, do(h, http.MethodDelete, "/history/not-a-uuid").Code)
}

func TestHistory_RepoErrors(t *testing.T) {
	h, repo := newMockHandler(t)
	dbErr := errors.New("db down")

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	require.Equal(t, http.StatusInternalServerError, do(h, http.MethodGet, "/history").Code)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.CipherRecord{}, dbErr)
	require.Equal(t, http.StatusInternalServerError, do(h, http.MethodGet, "/history/"+uuid.NewString()).Code)

	repo.EXPECT().Clear(gomock.Any()).Return(dbErr)
	require.Equal(t, http.StatusInternalServerError, do(h, http.MethodDelete, "/history").Code)
}

func TestHealth(t *testing.T) {
	h := newMemoryHandler(t)

	rr := do(h, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	mh, repo := newMockHandler(t)
	repo.EXPECT().Ping(gomock.Any()).Return(errors.New("db down"))

	rr = do(mh, http.MethodGet, "/health")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
