// Package service содержит бизнес-логику сервера шифров.
// Это прослойка между HTTP-обработчиками (api) и хранилищем истории (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/config"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Records RecordsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Cipher *CipherService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, cfg *config.Config, log *logger.Logger) *Services {
	return &Services{
		Cipher: NewCipherService(repos.Records, cfg.History, log),
	}
}

// RecordsRepo — хранилище истории операций.
type RecordsRepo interface {
	Create(ctx context.Context, rec models.CipherRecord) error
	List(ctx context.Context, limit int) ([]models.CipherRecord, error)
	Get(ctx context.Context, id uuid.UUID) (models.CipherRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
