// Package config содержит функции для работы с локальными настройками CLI-клиента.
//
// Настройки размещаются в домашней директории пользователя в файле:
//
//	~/.ciphers/settings.json
//
// Пакет предоставляет функции для получения пути по умолчанию, загрузки и сохранения
// настроек в JSON формате.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Значения по умолчанию
const (
	DefaultServerURL   = "http://127.0.0.1:8080"
	DefaultHistorySize = 50
)

// Settings содержит настройки CLI-клиента.
//
// ServerURL — адрес сервера для режима --remote.
// HistorySize — сколько последних операций хранить локально.
// Remote — выполнять операции на сервере по умолчанию.
type Settings struct {
	ServerURL   string `json:"server_url"`
	HistorySize int    `json:"history_size"`
	Remote      bool   `json:"remote"`
}

// Default возвращает настройки по умолчанию.
func Default() *Settings {
	return &Settings{
		ServerURL:   DefaultServerURL,
		HistorySize: DefaultHistorySize,
	}
}

// ApplyDefaults заполняет незаданные поля.
func (s *Settings) ApplyDefaults() {
	s.ServerURL = strings.TrimSpace(s.ServerURL)
	if s.ServerURL == "" {
		s.ServerURL = DefaultServerURL
	}
	if s.HistorySize <= 0 {
		s.HistorySize = DefaultHistorySize
	}
}

// DefaultDir возвращает рабочую директорию клиента: <home>/.ciphers
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ciphers"), nil
}

// DefaultPath возвращает путь к файлу настроек в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.ciphers/settings.json
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load загружает настройки из указанного файла.
//
// Если файл не существует, возвращает настройки по умолчанию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// дефолтные настройки, если файла нет
			return Default(), nil
		}
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	return &s, nil
}

// Save сохраняет настройки в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600.
func Save(path string, s *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
