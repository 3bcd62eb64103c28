// Package api реализует HTTP-слой сервера шифров.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (cipher/service/repository) в HTTP-коды и сообщения.
//
// Маршруты регистрируются в пакете net/http.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/cipher"
	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи ошибок;
//   - MaxBodyBytes: лимит размера тела запроса (0 — без лимита).
type Handler struct {
	Svc          *service.Services
	Log          *logger.Logger
	MaxBodyBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.Logger, maxBodyBytes int64) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		Svc:          svc,
		Log:          log,
		MaxBodyBytes: maxBodyBytes,
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError переводит ошибку сервиса в HTTP-ответ.
// Всё неизвестное логируется и отдаётся как 500 без подробностей.
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, cipher.ErrInvalidKey),
		errors.Is(err, cipher.ErrUnknownCipher),
		errors.Is(err, cipher.ErrUnknownDirection),
		errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrTextTooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, serr.ErrRecordNotFound), errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, err)
	default:
		h.Log.Sugar().Errorw(op+" failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
