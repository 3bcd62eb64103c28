package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/config"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/cipher"
	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// TransformInput — входные данные одной операции шифрования.
type TransformInput struct {
	Cipher    string
	Direction string
	Text      string
	Key       string
}

// CipherService выполняет операции шифрования и ведёт историю.
// Сервис:
//   - валидирует входные данные и лимиты (HistoryConfig);
//   - вызывает движок cipher;
//   - сохраняет результат как CipherRecord;
//   - не знает о HTTP и БД напрямую.
type CipherService struct {
	repo   RecordsRepo
	policy config.HistoryConfig
	log    *logger.Logger

	// для тестов
	Now   func() time.Time
	NewID func() uuid.UUID
}

// NewCipherService создаёт новый CipherService. log может быть nil.
func NewCipherService(repo RecordsRepo, policy config.HistoryConfig, log *logger.Logger) *CipherService {
	if log == nil {
		log = logger.Nop()
	}
	return &CipherService{
		repo:   repo,
		policy: policy,
		log:    log,
		Now:    func() time.Time { return time.Now().UTC() },
		NewID:  uuid.New,
	}
}

// Transform выполняет преобразование и сохраняет запись в историю.
//
// Ошибки:
//   - cipher.ErrUnknownCipher / cipher.ErrUnknownDirection — неизвестный шифр или направление;
//   - cipher.ErrInvalidKey — ключ не подходит шифру;
//   - ErrInvalidInput — пустой текст;
//   - ErrTextTooLarge — превышен лимит на текст или ключ;
//   - ErrInternal — ошибка хранилища.
func (s *CipherService) Transform(ctx context.Context, in TransformInput) (models.CipherRecord, error) {
	kind, err := cipher.ParseKind(in.Cipher)
	if err != nil {
		return models.CipherRecord{}, err
	}
	dir, err := cipher.ParseDirection(in.Direction)
	if err != nil {
		return models.CipherRecord{}, err
	}

	if in.Text == "" {
		return models.CipherRecord{}, fmt.Errorf("%w: text is empty", serr.ErrInvalidInput)
	}
	if s.policy.MaxTextBytes > 0 && (len(in.Text) > s.policy.MaxTextBytes || len(in.Key) > s.policy.MaxTextBytes) {
		return models.CipherRecord{}, serr.ErrTextTooLarge
	}

	result, err := cipher.Transform(kind, dir, in.Text, in.Key)
	s.log.LogOperation(string(kind), string(dir), len(in.Text), len(result), err)
	if err != nil {
		return models.CipherRecord{}, err
	}

	rec := models.CipherRecord{
		ID:           s.NewID().String(),
		OriginalText: in.Text,
		ResultText:   result,
		Key:          in.Key,
		Cipher:       string(kind),
		Direction:    string(dir),
		CreatedAt:    s.Now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Sugar().Errorw("save cipher record failed", "error", err, "record_id", rec.ID)
		return models.CipherRecord{}, serr.ErrInternal
	}
	return rec, nil
}

// Matrix возвращает матрицу Playfair для ключа в виде 5 строк по 5 букв.
func (s *CipherService) Matrix(key string) ([]string, error) {
	if s.policy.MaxTextBytes > 0 && len(key) > s.policy.MaxTextBytes {
		return nil, serr.ErrTextTooLarge
	}
	m, err := cipher.BuildPlayfairMatrix(key)
	if err != nil {
		return nil, err
	}
	return m.Rows(), nil
}

// ListHistory возвращает последние операции, новые первыми.
// limit <= 0 заменяется на DefaultLimit, больше MaxLimit обрезается до MaxLimit.
func (s *CipherService) ListHistory(ctx context.Context, limit int) ([]models.CipherRecord, error) {
	if limit <= 0 {
		limit = s.policy.DefaultLimit
	}
	if s.policy.MaxLimit > 0 && limit > s.policy.MaxLimit {
		limit = s.policy.MaxLimit
	}

	records, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, serr.ErrInternal
	}
	if records == nil {
		records = []models.CipherRecord{}
	}
	return records, nil
}

// GetRecord возвращает запись истории по ID.
func (s *CipherService) GetRecord(ctx context.Context, id string) (models.CipherRecord, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return models.CipherRecord{}, serr.ErrInvalidInput
	}

	rec, err := s.repo.Get(ctx, recID)
	if err != nil {
		return models.CipherRecord{}, repoError(err)
	}
	return rec, nil
}

// DeleteRecord удаляет запись истории по ID.
func (s *CipherService) DeleteRecord(ctx context.Context, id string) error {
	recID, err := uuid.Parse(id)
	if err != nil {
		return serr.ErrInvalidInput
	}
	return repoError(s.repo.Delete(ctx, recID))
}

// ClearHistory удаляет всю историю.
func (s *CipherService) ClearHistory(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return serr.ErrInternal
	}
	return nil
}

// Health проверяет доступность хранилища.
func (s *CipherService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// repoError пропускает ErrRecordNotFound, остальное превращает в ErrInternal.
func repoError(err error) error {
	if err == nil || errors.Is(err, serr.ErrRecordNotFound) {
		return err
	}
	return serr.ErrInternal
}
