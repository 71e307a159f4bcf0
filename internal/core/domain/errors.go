package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidRoot is returned when the library root does not exist or is not a directory.
	ErrInvalidRoot = zerr.New("library root does not exist or is not a directory")

	// ErrRootNotConfigured is returned when no library root is provided by config or flags.
	ErrRootNotConfigured = zerr.New("no library root configured, set library.root in tana.yaml or pass --root")

	// ErrWatcherAlreadyStarted is returned when Start is called on a watcher that is already watching.
	ErrWatcherAlreadyStarted = zerr.New("watcher already started")

	// ErrStoreLoadFailed is returned when the persisted index cannot be read or parsed at startup.
	ErrStoreLoadFailed = zerr.New("failed to load persisted index")

	// ErrStoreMarshalFailed is returned when the index cannot be marshaled for persistence.
	ErrStoreMarshalFailed = zerr.New("failed to marshal index")

	// ErrStoreWriteFailed is returned when the index snapshot cannot be written to disk.
	ErrStoreWriteFailed = zerr.New("failed to write index snapshot")

	// ErrStoreRenameFailed is returned when the temporary snapshot cannot replace the index file.
	ErrStoreRenameFailed = zerr.New("failed to replace index file")

	// ErrClassifyAmbiguous is returned when an event's path cannot be attributed to a
	// collection or chapter relative to the library root.
	ErrClassifyAmbiguous = zerr.New("cannot classify filesystem event")

	// ErrCollectionNotFound is returned when a requested collection is not in the index.
	ErrCollectionNotFound = zerr.New("collection not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrServeFailed is returned when the HTTP API server fails.
	ErrServeFailed = zerr.New("http server failed")
)
