// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое. Ошибки самих шифров
// (неверный ключ и т.п.) живут в пакете cipher.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для истории операций
var (
	ErrTextTooLarge   = errors.New("text too large")
	ErrRecordNotFound = errors.New("record not found")
)
