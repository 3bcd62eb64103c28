// @title           Classic Ciphers API
// @version         1.0
// @description     Caesar, Rail Fence, columnar Transposition and Playfair ciphers with operation history.
// @termsOfService  https://example.com/terms

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin
// @contact.email  ivan@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http https
//
// Package main содержит точку входа серверного приложения шифров.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - выбор хранилища истории (PostgreSQL с миграциями или in-memory);
//   - создание репозиториев, сервисов и HTTP-обработчиков;
//   - запуск HTTP или HTTPS (если tls.enabled) сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/config"
	h "github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/repository"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/service"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-classic-ciphers/swagger/docs"
)

func main() {
	sugar := logger.NewHTTPLogger().Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	log := logger.New(cfg.Log.Dir, cfg.Log.File)
	defer log.Sync()
	sugar = log.Sugar()

	// выбираем хранилище истории
	var records service.RecordsRepo
	var db *sql.DB
	switch cfg.History.Store {
	case config.StorePostgres:
		db, err = config.OpenDB(cfg.DB, cfg.Migrations, log)
		if err != nil {
			sugar.Fatal(err)
		}
		records = repository.NewRecordsRepository(db, cfg.DB.QueryTimeout)
	default:
		records = repository.NewMemoryRecords(cfg.History.Capacity)
	}
	// делаем отложенное закрытие бд
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	svc := service.NewServices(service.Repositories{Records: records}, cfg, log)
	handler := api.NewHandler(svc, log, cfg.Server.MaxBodyBytes)
	router := h.NewRouter(handler)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infow("server started", "addr", addr, "tls", cfg.TLS.Enabled, "store", cfg.History.Store)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
