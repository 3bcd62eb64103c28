package models

import "time"

// CipherRecord — неизменяемый снимок одной операции шифрования, элемент истории.
//
// Поля:
//   - ID: уникальный идентификатор записи (UUID в виде строки)
//   - OriginalText: входной текст
//   - ResultText: результат преобразования
//   - Key: ключ в том виде, в котором его ввёл пользователь
//   - Cipher: caesar | railfence | transposition | playfair
//   - Direction: encrypt | decrypt
//   - CreatedAt: время выполнения операции
type CipherRecord struct {
	ID           string    `json:"id"`
	OriginalText string    `json:"original_text"`
	ResultText   string    `json:"result_text"`
	Key          string    `json:"key"`
	Cipher       string    `json:"cipher"`
	Direction    string    `json:"direction"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransformRequest — запрос на преобразование текста.
//
// Используется в:
//
//	POST /cipher/transform
type TransformRequest struct {
	Cipher    string `json:"cipher"`
	Direction string `json:"direction"`
	Text      string `json:"text"`
	Key       string `json:"key"`
}

// TransformResponse — ответ на преобразование: сохранённая запись истории.
type TransformResponse struct {
	Record CipherRecord `json:"record"`
}

// MatrixResponse — матрица Playfair для визуализации.
//
// Используется в:
//
//	GET /cipher/playfair/matrix?key=...
type MatrixResponse struct {
	Key    string   `json:"key"`
	Matrix []string `json:"matrix"` // 5 строк по 5 букв
}

// HistoryResponse — список последних операций, новые первыми.
//
// Используется в:
//
//	GET /history
type HistoryResponse struct {
	Records []CipherRecord `json:"records"`
}

// ErrorResponse — стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}
