package domain

import (
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the configuration file tana looks for,
	// walking up from the working directory.
	ConfigFileName = "tana.yaml"

	// IndexFileName is the default name of the persisted index file,
	// placed inside the library root unless overridden.
	IndexFileName = ".tana.index.json"

	// ChapterExtension is the archive suffix recognized as a chapter.
	// Matching is case-sensitive.
	ChapterExtension = ".cbz"

	// DefaultFlushWindow is the minimum spacing between consecutive index flushes.
	DefaultFlushWindow = 500 * time.Millisecond

	// DefaultRenameWindow is how long the watcher waits to pair a rename
	// with its follow-up create event.
	DefaultRenameWindow = 100 * time.Millisecond

	// DefaultServeAddr is the default listen address of the HTTP API.
	DefaultServeAddr = ":8420"

	// DirPerm is the permission mode for directories created by tana.
	DirPerm = 0o755

	// FilePerm is the permission mode for files created by tana.
	FilePerm = 0o644
)

// Settings is the resolved runtime configuration, after merging the config
// file, defaults, and command line flags.
type Settings struct {
	// Root is the absolute path of the watched library root.
	Root string
	// IndexPath is the path of the persisted index file.
	IndexPath string
	// FlushWindow is the throttle window for index flushes.
	FlushWindow time.Duration
	// RenameWindow is the watcher's rename pairing window.
	RenameWindow time.Duration
	// ServeAddr is the HTTP API listen address.
	ServeAddr string
	// LogJSON switches logging to JSON output.
	LogJSON bool
	// LogFile, when set, mirrors logs to a rotated file.
	LogFile string
}

// DefaultIndexPath returns the index file location for a library root.
func DefaultIndexPath(root string) string {
	return filepath.Join(root, IndexFileName)
}

// DefaultSettings returns settings with all defaults applied and no root.
func DefaultSettings() Settings {
	return Settings{
		FlushWindow:  DefaultFlushWindow,
		RenameWindow: DefaultRenameWindow,
		ServeAddr:    DefaultServeAddr,
	}
}
