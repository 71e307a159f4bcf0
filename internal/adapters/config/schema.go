package config

// File represents the structure of the tana.yaml configuration file.
type File struct {
	Version string     `yaml:"version"`
	Library LibraryDTO `yaml:"library"`
	Watch   WatchDTO   `yaml:"watch"`
	Serve   ServeDTO   `yaml:"serve"`
	Log     LogDTO     `yaml:"log"`
}

// LibraryDTO configures the watched library and its persisted index.
type LibraryDTO struct {
	// Root is the library root directory. Relative paths resolve against
	// the config file's directory.
	Root string `yaml:"root"`
	// Index is the persisted index file path. Defaults to
	// <root>/.tana.index.json.
	Index string `yaml:"index"`
}

// WatchDTO configures the watcher and the flush throttle.
type WatchDTO struct {
	// Window is the flush throttle window, e.g. "500ms".
	Window string `yaml:"window"`
	// RenameWindow is the rename pairing window, e.g. "100ms".
	RenameWindow string `yaml:"renameWindow"`
}

// ServeDTO configures the HTTP API.
type ServeDTO struct {
	Addr string `yaml:"addr"`
}

// LogDTO configures logging output.
type LogDTO struct {
	JSON bool   `yaml:"json"`
	File string `yaml:"file"`
}
