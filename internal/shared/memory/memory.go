// Package memory содержит потокобезопасное хранилище последних операций шифрования.
//
// Хранилище ограничено по размеру: при переполнении вытесняются самые старые записи.
// Используется CLI для локальной истории и сервером как in-memory репозиторий.
package memory

import (
	"sync"

	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// DefaultCapacity — размер истории, если не задан явно.
const DefaultCapacity = 50

// HistoryStore — ограниченное хранилище записей, новые записи первыми.
type HistoryStore struct {
	mu       sync.RWMutex
	capacity int
	records  []models.CipherRecord
}

// NewHistory создаёт пустое хранилище. capacity <= 0 заменяется на DefaultCapacity.
func NewHistory(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &HistoryStore{
		capacity: capacity,
		records:  make([]models.CipherRecord, 0, capacity),
	}
}

// Capacity возвращает максимальное число записей.
func (s *HistoryStore) Capacity() int {
	return s.capacity
}

// Add добавляет запись в начало истории и отбрасывает самые старые сверх capacity.
func (s *HistoryStore) Add(rec models.CipherRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.CipherRecord{rec}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}
}

// List возвращает копию не более limit последних записей (limit <= 0 — все).
func (s *HistoryStore) List(limit int) []models.CipherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.CipherRecord, n)
	copy(out, s.records[:n])
	return out
}

// Len возвращает текущее число записей.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get возвращает запись по ID.
//
// Если записи нет — возвращает serr.ErrRecordNotFound.
func (s *HistoryStore) Get(id string) (models.CipherRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.CipherRecord{}, serr.ErrRecordNotFound
}

// Delete удаляет запись по ID.
//
// Если записи нет — возвращает serr.ErrRecordNotFound.
func (s *HistoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return serr.ErrRecordNotFound
}

// Clear удаляет все записи.
func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// ReplaceAll полностью заменяет содержимое переданным списком (новые первыми).
// Лишние записи сверх capacity отбрасываются.
func (s *HistoryStore) ReplaceAll(records []models.CipherRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(records)
	if n > s.capacity {
		n = s.capacity
	}
	s.records = make([]models.CipherRecord, n, s.capacity)
	copy(s.records, records[:n])
}
