package memory

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// HistoryDump — формат файла локальной истории:
//
//	{ "records": [ ... ] }
type HistoryDump struct {
	Records []models.CipherRecord `json:"records"`
}

// DefaultHistoryPath возвращает путь по умолчанию для файла истории:
//
//	$HOME/.ciphers/history.json
func DefaultHistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ciphers", "history.json"), nil
}

// SaveToFile сохраняет историю в JSON (директория 0700, файл 0600).
// Порядок записей сохраняется: новые первыми.
func SaveToFile(path string, store *HistoryStore) error {
	out := HistoryDump{Records: store.List(0)}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает историю из файла в store.
//
// Если файла нет — это первый запуск, возвращается nil.
// Некорректный JSON возвращается как ошибка.
func LoadFromFile(path string, store *HistoryStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump HistoryDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	store.ReplaceAll(dump.Records)
	return nil
}
