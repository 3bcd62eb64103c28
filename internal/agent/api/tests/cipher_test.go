package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/agent/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

func TestClient_Transform(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cipher/transform", r.URL.Path)

		var req models.TransformRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, models.TransformRequest{Cipher: "caesar", Direction: "encrypt", Text: "Attack", Key: "3"}, req)

		json.NewEncoder(w).Encode(models.TransformResponse{Record: models.CipherRecord{
			ID: "id-1", OriginalText: req.Text, ResultText: "Dwwdfn", Key: req.Key,
			Cipher: req.Cipher, Direction: req.Direction, CreatedAt: time.Now().UTC(),
		}})
	}))
	defer srv.Close()

	rec, err := api.NewClient(srv.URL).Transform(models.TransformRequest{
		Cipher: "caesar", Direction: "encrypt", Text: "Attack", Key: "3",
	})
	require.NoError(t, err)
	require.Equal(t, "id-1", rec.ID)
	require.Equal(t, "Dwwdfn", rec.ResultText)
}

func TestClient_Matrix_EscapesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cipher/playfair/matrix", r.URL.Path)
		require.Equal(t, "hello world&x", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(models.MatrixResponse{Key: "k", Matrix: []string{"ABCDE"}})
	}))
	defer srv.Close()

	rows, err := api.NewClient(srv.URL).Matrix("hello world&x")
	require.NoError(t, err)
	require.Equal(t, []string{"ABCDE"}, rows)
}

func TestClient_HistoryEndpoints(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.RequestURI())

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/history":
			json.NewEncoder(w).Encode(models.HistoryResponse{Records: []models.CipherRecord{{ID: "a"}, {ID: "b"}}})
		case r.Method == http.MethodGet && r.URL.Path == "/history/a":
			json.NewEncoder(w).Encode(models.CipherRecord{ID: "a"})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)

	records, err := c.History(5)
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, err = c.History(0)
	require.NoError(t, err)

	rec, err := c.GetRecord("a")
	require.NoError(t, err)
	require.Equal(t, "a", rec.ID)

	require.NoError(t, c.DeleteRecord("a"))
	require.NoError(t, c.ClearHistory())

	require.Equal(t, []string{
		"GET /history?limit=5",
		"GET /history",
		"GET /history/a",
		"DELETE /history/a",
		"DELETE /history",
	}, calls)
}
