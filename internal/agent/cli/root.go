// Package cli реализует командный интерфейс (CLI) клиента шифров.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных настроек и истории операций;
//   - выполнение операций локально или на сервере (--remote) и вывод результата.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/agent/config"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/memory"
)

// ServerEnv — переменная окружения с адресом сервера (можно задать в .env).
const ServerEnv = "CIPHERS_SERVER"

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:8080").
	ServerURL string
	// Remote — выполнять операции на сервере, а не локально.
	Remote bool

	// SettingsPath — путь к файлу настроек.
	SettingsPath string
	// Settings — загруженные настройки.
	Settings *config.Settings

	// HistoryPath — путь к файлу локальной истории.
	HistoryPath string
	// History — локальная история операций, новые первыми.
	History *memory.HistoryStore

	// Log — файловый логгер операций. Может быть nil.
	Log *logger.Logger
}

func (a *App) logger() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}

func (a *App) history() *memory.HistoryStore {
	if a.History == nil {
		a.History = memory.NewHistory(0)
	}
	return a.History
}

// saveHistory сохраняет локальную историю, если задан путь.
func (a *App) saveHistory() error {
	if a.HistoryPath == "" {
		return nil
	}
	return SaveHistoryToFile(a.HistoryPath, a.history())
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// .env, файл настроек, адрес сервера, локальная история и логгер.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "ciphers",
		Short: "Классические шифры: Caesar, Rail Fence, Transposition, Playfair",
		Long: `Classic ciphers CLI.

Команды:
  encrypt   Зашифровать текст
  decrypt   Расшифровать текст
  matrix    Показать матрицу Playfair для ключа
  history   Последние операции (history clear — очистить)
  version   Версия и дата сборки

Примеры:

  ciphers encrypt --cipher caesar --key 3 --text "Attack at dawn"
  ciphers decrypt --cipher railfence --key 3 --text WECRERDSOEEAIVD
  echo "hide the gold" | ciphers encrypt --cipher playfair --key playfairexample
  ciphers matrix --key monarchy
  ciphers history --limit 5
  ciphers encrypt --remote --cipher transposition --key zebra --text "attack at dawn"
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env необязателен
			_ = godotenv.Load()

			if app.SettingsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.SettingsPath = p
			}

			settings, err := config.Load(app.SettingsPath)
			if err != nil {
				return fmt.Errorf("load settings %s: %w", app.SettingsPath, err)
			}
			app.Settings = settings

			// приоритет адреса: --server, CIPHERS_SERVER, settings.json
			if !cmd.Flags().Changed("server") {
				app.ServerURL = settings.ServerURL
				if v := os.Getenv(ServerEnv); v != "" {
					app.ServerURL = v
				}
			}
			if !cmd.Flags().Changed("remote") {
				app.Remote = settings.Remote
			}

			dir := filepath.Dir(app.SettingsPath)
			if app.HistoryPath == "" {
				app.HistoryPath = filepath.Join(dir, "history.json")
			}
			app.History = memory.NewHistory(settings.HistorySize)
			if err := memory.LoadFromFile(app.HistoryPath, app.History); err != nil {
				return fmt.Errorf("load history %s: %w", app.HistoryPath, err)
			}

			app.Log = logger.New(filepath.Join(dir, "logs"), "cli.log")
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", config.DefaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Remote, "remote", false, "run operations on the server")
	cmd.PersistentFlags().StringVar(&app.SettingsPath, "settings", "", "settings file (default ~/.ciphers/settings.json)")
	cmd.PersistentFlags().StringVar(&app.HistoryPath, "history-file", "", "local history file (default next to settings)")

	cmd.AddCommand(NewEncryptCmd(app))
	cmd.AddCommand(NewDecryptCmd(app))
	cmd.AddCommand(NewMatrixCmd(app))
	cmd.AddCommand(NewHistoryCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
