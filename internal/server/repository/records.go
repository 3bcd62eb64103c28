// Package repository реализует хранилища истории операций:
// PostgreSQL (RecordsRepository) и in-memory (MemoryRecords).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// RecordsRepository реализует доступ к истории операций в PostgreSQL.
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type RecordsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewRecordsRepository создаёт новый экземпляр RecordsRepository.
// timeout > 0 ограничивает каждый запрос к БД.
func NewRecordsRepository(db *sql.DB, timeout time.Duration) *RecordsRepository {
	return &RecordsRepository{db: db, timeout: timeout}
}

func (r *RecordsRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create сохраняет запись истории.
//
// Ошибки:
//   - ErrInvalidInput — запись с таким id уже есть (unique_violation);
//   - ErrInternal — прочие ошибки базы данных.
func (r *RecordsRepository) Create(ctx context.Context, rec models.CipherRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cipher_records (id, original_text, result_text, key, cipher, direction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		rec.ID,
		rec.OriginalText,
		rec.ResultText,
		rec.Key,
		rec.Cipher,
		rec.Direction,
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return serr.ErrInvalidInput
		}
		return serr.ErrInternal
	}
	return nil
}

// List возвращает не более limit последних записей, новые первыми.
func (r *RecordsRepository) List(ctx context.Context, limit int) ([]models.CipherRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, original_text, result_text, key, cipher, direction, created_at
		FROM cipher_records
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	result := make([]models.CipherRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return result, nil
}

// Get возвращает запись по id.
//
// Если записи нет — ErrRecordNotFound.
func (r *RecordsRepository) Get(ctx context.Context, id uuid.UUID) (models.CipherRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, original_text, result_text, key, cipher, direction, created_at
		FROM cipher_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CipherRecord{}, serr.ErrRecordNotFound
		}
		return models.CipherRecord{}, serr.ErrInternal
	}
	return rec, nil
}

// Delete удаляет запись по id.
//
// Если записи нет — ErrRecordNotFound.
func (r *RecordsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cipher_records WHERE id = $1`, id)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrRecordNotFound
	}
	return nil
}

// Clear удаляет всю историю.
func (r *RecordsRepository) Clear(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cipher_records`); err != nil {
		return serr.ErrInternal
	}
	return nil
}

// Ping проверяет соединение с БД.
func (r *RecordsRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (models.CipherRecord, error) {
	var rec models.CipherRecord
	err := s.Scan(
		&rec.ID,
		&rec.OriginalText,
		&rec.ResultText,
		&rec.Key,
		&rec.Cipher,
		&rec.Direction,
		&rec.CreatedAt,
	)
	return rec, err
}
