// Package store implements the persisted collection index: an in-memory
// map behind a single lock, flushed to a JSON file through a throttle.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/tana/internal/engine/throttle"
	"go.trai.ch/zerr"
)

var _ ports.LibraryStore = (*Store)(nil)

// Store implements ports.LibraryStore backed by a single JSON file.
// Mutations are applied in memory synchronously and schedule a throttled
// flush; the file on disk is always a complete snapshot that existed in
// memory at some past instant.
type Store struct {
	mu       sync.Mutex
	path     string
	records  domain.Snapshot
	dirty    bool
	flushErr error
	throttle *throttle.Throttle
	onErr    func(error)
}

// Open loads the index at path, or starts empty if the file is absent. A
// corrupt or unreadable file also yields an empty, fully usable store
// together with a domain.ErrStoreLoadFailed the caller should log and
// continue past. onErr receives write failures from timer-driven flushes;
// it may be nil.
func Open(path string, window time.Duration, onErr func(error)) (*Store, error) {
	s := &Store{
		path:    path,
		records: make(domain.Snapshot),
		onErr:   onErr,
	}
	s.throttle = throttle.New(window, s.flushAndReport)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, zerr.Wrap(err, domain.ErrStoreLoadFailed.Error())
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		s.records = make(domain.Snapshot)
		return s, zerr.Wrap(err, domain.ErrStoreLoadFailed.Error())
	}
	return s, nil
}

// Get returns the record for a collection id.
func (s *Store) Get(id string) (domain.CollectionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.CollectionRecord{}, false
	}
	return rec.Clone(), true
}

// Set stores a record under id. An identical record does not dirty the
// store and schedules no flush.
func (s *Store) Set(id string, rec domain.CollectionRecord) {
	s.mu.Lock()
	if existing, ok := s.records[id]; ok && existing.Equal(rec) {
		s.mu.Unlock()
		return
	}
	s.records[id] = rec.Clone()
	s.dirty = true
	s.mu.Unlock()

	s.throttle.Schedule()
}

// Delete removes the record for id, reporting whether it was present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	_, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.records, id)
	s.dirty = true
	s.mu.Unlock()

	s.throttle.Schedule()
	return true
}

// Rename migrates the record from oldID to newID, preserving its creation
// time. It reports whether oldID existed.
func (s *Store) Rename(oldID, newID, newPath string) bool {
	s.mu.Lock()
	rec, ok := s.records[oldID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.records, oldID)
	rec.Path = newPath
	rec.LastUpdated = time.Now().UTC()
	s.records[newID] = rec
	s.dirty = true
	s.mu.Unlock()

	s.throttle.Schedule()
	return true
}

// Snapshot returns an immutable deep copy of the index.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.Clone()
}

// Len returns the number of indexed collections.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ForceFlush bypasses the throttle, cancels any pending timer, and writes
// the index to disk now.
func (s *Store) ForceFlush() error {
	s.throttle.Flush()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushErr
}

// Close cancels any pending flush timer and performs a final flush.
func (s *Store) Close() error {
	s.throttle.Stop()
	return s.flush()
}

// flushAndReport is the throttle callback; flush errors from timer-driven
// executions surface through the error handler.
func (s *Store) flushAndReport() {
	if err := s.flush(); err != nil && s.onErr != nil {
		s.onErr(err)
	}
}

// flush writes the full index atomically: marshal, write a sibling .tmp
// file, rename over the target. A failure removes the temp file and leaves
// both the previous on-disk snapshot and the in-memory state intact. The
// store lock is held for the duration; the write is a single bounded call.
func (s *Store) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return s.flushErr
	}

	err := s.writeSnapshotLocked()
	s.flushErr = err
	if err == nil {
		s.dirty = false
	}
	return err
}

func (s *Store) writeSnapshotLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		_ = os.Remove(tmp)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return zerr.Wrap(err, domain.ErrStoreRenameFailed.Error())
	}
	return nil
}
