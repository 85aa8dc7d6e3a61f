package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	CacheDir string   `json:"cache_dir"`
	Year     int      `json:"year"`
	Schools  []string `json:"schools"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "config.json5"),
		[]byte(`{
			// default catalogue year
			year: 2025,
			cache_dir: ".cache",
			schools: ["COMP"],
		}`),
		0600,
	)
	require.NoError(t, err)

	err = os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{ cache_dir: "/tmp/handbook-cache" }`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 2025, cfg.Year)
	require.Equal(t, "/tmp/handbook-cache", cfg.CacheDir)
	require.Equal(t, []string{"COMP"}, cfg.Schools)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
