// Package config provides the configuration loader for tana.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a YAML file discovered by
// walking up from the working directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers tana.yaml starting at cwd and returns settings with
// defaults applied. A missing config file yields defaults only; flags are
// expected to supply the rest.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, found := findConfiguration(cwd)
	if !found {
		return settings, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return settings, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.resolve(filepath.Dir(configPath), file)
}

// findConfiguration walks up from cwd until it finds tana.yaml or reaches
// the filesystem root.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve applies the parsed file over the defaults. Relative paths are
// anchored at the config file's directory.
func (l *Loader) resolve(baseDir string, file File) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.Library.Root != "" {
		settings.Root = resolvePath(baseDir, file.Library.Root)
	}
	if file.Library.Index != "" {
		settings.IndexPath = resolvePath(baseDir, file.Library.Index)
	}
	if file.Serve.Addr != "" {
		settings.ServeAddr = file.Serve.Addr
	}
	settings.LogJSON = file.Log.JSON
	if file.Log.File != "" {
		settings.LogFile = resolvePath(baseDir, file.Log.File)
	}

	var err error
	if settings.FlushWindow, err = parseWindow(file.Watch.Window, settings.FlushWindow); err != nil {
		return settings, zerr.With(err, "key", "watch.window")
	}
	if settings.RenameWindow, err = parseWindow(file.Watch.RenameWindow, settings.RenameWindow); err != nil {
		return settings, zerr.With(err, "key", "watch.renameWindow")
	}

	return settings, nil
}

func parseWindow(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if d <= 0 {
		return fallback, zerr.With(domain.ErrConfigParseFailed, "reason", "window must be positive")
	}
	return d, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
