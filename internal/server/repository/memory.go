package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/memory"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// MemoryRecords — in-memory хранилище истории поверх memory.HistoryStore.
// Используется при history.store=memory (без базы данных). Данные живут до рестарта.
type MemoryRecords struct {
	store *memory.HistoryStore
}

// NewMemoryRecords создаёт хранилище на capacity записей.
func NewMemoryRecords(capacity int) *MemoryRecords {
	return &MemoryRecords{store: memory.NewHistory(capacity)}
}

func (m *MemoryRecords) Create(_ context.Context, rec models.CipherRecord) error {
	m.store.Add(rec)
	return nil
}

func (m *MemoryRecords) List(_ context.Context, limit int) ([]models.CipherRecord, error) {
	return m.store.List(limit), nil
}

func (m *MemoryRecords) Get(_ context.Context, id uuid.UUID) (models.CipherRecord, error) {
	return m.store.Get(id.String())
}

func (m *MemoryRecords) Delete(_ context.Context, id uuid.UUID) error {
	return m.store.Delete(id.String())
}

func (m *MemoryRecords) Clear(_ context.Context) error {
	m.store.Clear()
	return nil
}

func (m *MemoryRecords) Ping(_ context.Context) error {
	return nil
}
