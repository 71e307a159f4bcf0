// Package domain contains the core types of the library index.
package domain

import (
	"slices"
	"time"
)

// CollectionRecord is the indexed state of one collection: a first-level
// directory of the library root containing chapter archives.
type CollectionRecord struct {
	Path          string    `json:"path"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdated   time.Time `json:"last_updated"`
	CBZFiles      []string  `json:"cbz_files"`
	TotalChapters int       `json:"total_chapters"`
}

// Clone returns a deep copy of the record.
func (r CollectionRecord) Clone() CollectionRecord {
	r.CBZFiles = slices.Clone(r.CBZFiles)
	return r
}

// Equal reports whether two records are identical, timestamps included.
func (r CollectionRecord) Equal(other CollectionRecord) bool {
	return r.Path == other.Path &&
		r.CreatedAt.Equal(other.CreatedAt) &&
		r.LastUpdated.Equal(other.LastUpdated) &&
		r.TotalChapters == other.TotalChapters &&
		slices.Equal(r.CBZFiles, other.CBZFiles)
}

// SameContent reports whether two records describe the same on-disk state,
// ignoring timestamps. Used to decide whether a re-derived record should
// replace an existing one or leave it untouched.
func (r CollectionRecord) SameContent(other CollectionRecord) bool {
	return r.Path == other.Path && slices.Equal(r.CBZFiles, other.CBZFiles)
}

// Snapshot is a point-in-time copy of the library keyed by collection id.
type Snapshot map[string]CollectionRecord

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for id, rec := range s {
		out[id] = rec.Clone()
	}
	return out
}

// IDs returns the collection ids in sorted order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TotalChapters returns the number of chapter archives across all collections.
func (s Snapshot) TotalChapters() int {
	total := 0
	for _, rec := range s {
		total += rec.TotalChapters
	}
	return total
}
