package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/memory"
)

func TestSaveAndLoad_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	src := memory.NewHistory(10)
	src.Add(rec("old"))
	src.Add(rec("new"))

	require.NoError(t, memory.SaveToFile(path, src))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dst := memory.NewHistory(10)
	require.NoError(t, memory.LoadFromFile(path, dst))

	items := dst.List(0)
	require.Len(t, items, 2)
	require.Equal(t, "new", items[0].ID)
	require.Equal(t, "old", items[1].ID)
	require.Equal(t, "Dwwdfn", items[0].ResultText)
}

func TestLoadFromFile_MissingFileIsOK(t *testing.T) {
	s := memory.NewHistory(3)
	require.NoError(t, memory.LoadFromFile(filepath.Join(t.TempDir(), "absent.json"), s))
	require.Equal(t, 0, s.Len())
}

func TestLoadFromFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	require.Error(t, memory.LoadFromFile(path, memory.NewHistory(3)))
}

func TestDefaultHistoryPath(t *testing.T) {
	p, err := memory.DefaultHistoryPath()
	require.NoError(t, err)
	require.Equal(t, "history.json", filepath.Base(p))
	require.Equal(t, ".ciphers", filepath.Base(filepath.Dir(p)))
}
