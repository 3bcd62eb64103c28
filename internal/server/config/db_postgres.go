package config

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
)

// OpenDB открывает подключение к PostgreSQL (драйвер pgx), настраивает пул,
// проверяет доступность базы (Ping) и, если включено, применяет миграции.
//
// Если миграции уже применены, migrate.ErrNoChange не считается ошибкой.
func OpenDB(cfg DBConfig, m MigrationsConfig, log *logger.Logger) (*sql.DB, error) {
	customLog := log.Sugar()

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if !m.Enabled {
		return db, nil
	}

	if err := Migrate(db, m.Path); err != nil {
		customLog.Errorf("error applying migrations: %v", err)
		db.Close()
		return nil, err
	}

	customLog.Info("migrations applied successfully")
	return db, nil
}

// Migrate применяет миграции из source (например file://migrations/postgres).
func Migrate(db *sql.DB, source string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
