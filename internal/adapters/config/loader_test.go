package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/adapters/config"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	loader := config.NewLoader(logger.New())
	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, settings.Root)
	assert.Equal(t, domain.DefaultFlushWindow, settings.FlushWindow)
	assert.Equal(t, domain.DefaultRenameWindow, settings.RenameWindow)
	assert.Equal(t, domain.DefaultServeAddr, settings.ServeAddr)
}

func TestLoad_FullFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
library:
  root: manga
  index: state/index.json
watch:
  window: 250ms
  renameWindow: 50ms
serve:
  addr: ":9000"
log:
  json: true
  file: logs/tana.log
`)

	loader := config.NewLoader(logger.New())
	settings, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "manga"), settings.Root)
	assert.Equal(t, filepath.Join(dir, "state", "index.json"), settings.IndexPath)
	assert.Equal(t, 250*time.Millisecond, settings.FlushWindow)
	assert.Equal(t, 50*time.Millisecond, settings.RenameWindow)
	assert.Equal(t, ":9000", settings.ServeAddr)
	assert.True(t, settings.LogJSON)
	assert.Equal(t, filepath.Join(dir, "logs", "tana.log"), settings.LogFile)
}

func TestLoad_AbsolutePathsKept(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	root := t.TempDir()
	writeConfig(t, dir, "library:\n  root: "+root+"\n")

	loader := config.NewLoader(logger.New())
	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, root, settings.Root)
}

func TestLoad_WalksUpToFindConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "serve:\n  addr: \":7000\"\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	loader := config.NewLoader(logger.New())
	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, ":7000", settings.ServeAddr)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "library: [not a mapping")

	loader := config.NewLoader(logger.New())
	_, err := loader.Load(dir)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_InvalidWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "not a duration", value: "soon"},
		{name: "negative", value: "-1s"},
		{name: "zero", value: "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, "watch:\n  window: "+tt.value+"\n")

			loader := config.NewLoader(logger.New())
			_, err := loader.Load(dir)
			require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
		})
	}
}
