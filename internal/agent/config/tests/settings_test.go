package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/agent/config"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.json")

	s, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, config.Default(), s)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "settings.json")

	want := &config.Settings{ServerURL: "http://example.com:9090", HistorySize: 7, Remote: true}
	require.NoError(t, config.Save(p, want))

	info, err := os.Stat(p)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoad_FillsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"remote":true,"server_url":"  "}`), 0o600))

	got, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, config.DefaultServerURL, got.ServerURL)
	require.Equal(t, config.DefaultHistorySize, got.HistorySize)
	require.True(t, got.Remote)
}

func TestLoad_BadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(p, []byte("{not-json"), 0o600))

	_, err := config.Load(p)
	require.Error(t, err)
}

func TestDefaultPath_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := config.DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".ciphers", "settings.json"), p)
}
