package ports

import "go.trai.ch/tana/internal/core/domain"

// LibraryStore is the in-memory collection index with throttled durable
// persistence. Mutations are synchronous and immediately visible to reads;
// only the disk write is deferred through the flush throttle.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LibraryStore interface {
	// Get returns the record for a collection id.
	Get(id string) (domain.CollectionRecord, bool)

	// Set stores a record under id and schedules a flush. Setting a record
	// identical to the current one is a no-op.
	Set(id string, rec domain.CollectionRecord)

	// Delete removes the record for id, reporting whether it was present.
	Delete(id string) bool

	// Rename migrates the record from oldID to newID, updating its path and
	// last-updated time while preserving created-at. It reports whether
	// oldID existed.
	Rename(oldID, newID, newPath string) bool

	// Snapshot returns an immutable deep copy of the full index.
	Snapshot() domain.Snapshot

	// Len returns the number of indexed collections.
	Len() int

	// ForceFlush bypasses the throttle and writes the index to disk now.
	ForceFlush() error

	// Close cancels any pending flush timer and performs a final flush.
	Close() error
}
