package tests

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/memory"
)

// withDeps восстанавливает подменяемые зависимости после теста
func withDeps(t *testing.T, fn func()) {
	t.Helper()

	origNew := cli.NewAPIClient
	origSave := cli.SaveHistoryToFile
	origTerm := cli.StdinIsTerminal
	origNow := cli.Now
	origID := cli.NewID

	t.Cleanup(func() {
		cli.NewAPIClient = origNew
		cli.SaveHistoryToFile = origSave
		cli.StdinIsTerminal = origTerm
		cli.Now = origNow
		cli.NewID = origID
	})

	cli.Now = func() time.Time { return time.Date(2026, 1, 19, 15, 0, 0, 0, time.UTC) }
	cli.StdinIsTerminal = func() bool { return true }

	fn()
}

func newApp(t *testing.T) *cli.App {
	t.Helper()
	return &cli.App{
		HistoryPath: filepath.Join(t.TempDir(), "history.json"),
		History:     memory.NewHistory(10),
	}
}
