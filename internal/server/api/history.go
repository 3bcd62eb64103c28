package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ListHistory возвращает последние операции, новые первыми.
//
// @Summary      List history
// @Description  Returns recent cipher operations, newest first. Limit defaults and clamps per server config.
// @Tags         history
// @Produce      json
// @Param        limit query int false "Max records"
// @Success      200 {object} models.HistoryResponse
// @Failure      400 {object} models.ErrorResponse "Invalid limit"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /history [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
			return
		}
		limit = n
	}

	records, err := h.Svc.Cipher.ListHistory(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, "list history", err)
		return
	}

	writeJSON(w, http.StatusOK, models.HistoryResponse{Records: records})
}

// GetRecord возвращает одну запись истории.
//
// @Summary      Get history record
// @Tags         history
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} models.CipherRecord
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      404 {object} models.ErrorResponse "Record not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /history/{id} [get]
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Svc.Cipher.GetRecord(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "get record", err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// DeleteRecord удаляет одну запись истории.
//
// @Summary      Delete history record
// @Tags         history
// @Param        id path string true "Record ID"
// @Success      204
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      404 {object} models.ErrorResponse "Record not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /history/{id} [delete]
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.Cipher.DeleteRecord(r.Context(), id); err != nil {
		h.writeServiceError(w, "delete record", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearHistory удаляет всю историю.
//
// @Summary      Clear history
// @Tags         history
// @Success      204
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /history [delete]
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Cipher.ClearHistory(r.Context()); err != nil {
		h.writeServiceError(w, "clear history", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health проверяет доступность хранилища истории.
//
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Cipher.Health(r.Context()); err != nil {
		h.Log.Sugar().Errorw("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
