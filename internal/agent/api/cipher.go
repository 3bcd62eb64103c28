package api

import (
	"net/url"
	"strconv"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// Transform отправляет текст на шифрование/расшифровку.
//
// Выполняет запрос:
//
//	POST /cipher/transform
//
// Возвращает запись истории, сохранённую сервером.
func (c *Client) Transform(req models.TransformRequest) (models.CipherRecord, error) {
	var resp models.TransformResponse
	err := c.PostJSON("/cipher/transform", req, &resp)
	return resp.Record, err
}

// Matrix запрашивает матрицу Playfair для ключа.
//
//	GET /cipher/playfair/matrix?key=...
func (c *Client) Matrix(key string) ([]string, error) {
	var resp models.MatrixResponse
	err := c.GetJSON("/cipher/playfair/matrix?key="+url.QueryEscape(key), &resp)
	return resp.Matrix, err
}

// History возвращает последние операции сервера, новые первыми.
// limit <= 0 — лимит по умолчанию на стороне сервера.
//
//	GET /history?limit=N
func (c *Client) History(limit int) ([]models.CipherRecord, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp models.HistoryResponse
	err := c.GetJSON(path, &resp)
	return resp.Records, err
}

// GetRecord возвращает одну запись истории сервера.
//
//	GET /history/{id}
func (c *Client) GetRecord(id string) (models.CipherRecord, error) {
	var rec models.CipherRecord
	err := c.GetJSON("/history/"+url.PathEscape(id), &rec)
	return rec, err
}

// DeleteRecord удаляет запись истории на сервере.
//
//	DELETE /history/{id}
func (c *Client) DeleteRecord(id string) error {
	return c.DeleteJSON("/history/"+url.PathEscape(id), nil)
}

// ClearHistory очищает историю на сервере.
//
//	DELETE /history
func (c *Client) ClearHistory() error {
	return c.DeleteJSON("/history", nil)
}
