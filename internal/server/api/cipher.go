package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// Transform шифрует или расшифровывает текст выбранным шифром
// и возвращает сохранённую запись истории.
//
// Возможные ошибки:
//   - ErrBadJSON — тело запроса не JSON;
//   - ErrInvalidKey / ErrUnknownCipher / ErrUnknownDirection / ErrInvalidInput — 400;
//   - ErrTextTooLarge — превышен лимит текста или тела;
//   - ErrInternal — внутренняя ошибка сервера.
//
// @Summary      Transform text
// @Description  Encrypts or decrypts text with caesar, railfence, transposition or playfair and stores the result in history.
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request body models.TransformRequest true "Transform request"
// @Success      200 {object} models.TransformResponse
// @Failure      400 {object} models.ErrorResponse "Invalid key, unknown cipher or bad JSON"
// @Failure      413 {object} models.ErrorResponse "Text too large"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /cipher/transform [post]
func (h *Handler) Transform(w http.ResponseWriter, r *http.Request) {
	if h.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}

	var req models.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, serr.ErrTextTooLarge)
			return
		}
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	rec, err := h.Svc.Cipher.Transform(r.Context(), service.TransformInput{
		Cipher:    req.Cipher,
		Direction: req.Direction,
		Text:      req.Text,
		Key:       req.Key,
	})
	if err != nil {
		h.writeServiceError(w, "transform", err)
		return
	}

	writeJSON(w, http.StatusOK, models.TransformResponse{Record: rec})
}

// Matrix возвращает матрицу Playfair для ключа.
//
// @Summary      Playfair matrix
// @Description  Returns the 5x5 Playfair key square (J folded into I) for visualization.
// @Tags         cipher
// @Produce      json
// @Param        key query string true "Playfair key"
// @Success      200 {object} models.MatrixResponse
// @Failure      413 {object} models.ErrorResponse "Key too large"
// @Router       /cipher/playfair/matrix [get]
func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	rows, err := h.Svc.Cipher.Matrix(key)
	if err != nil {
		h.writeServiceError(w, "playfair matrix", err)
		return
	}

	writeJSON(w, http.StatusOK, models.MatrixResponse{Key: key, Matrix: rows})
}
