package domain

import "slices"

// ChapterDiff is the chapter-level change set for one collection present in
// both snapshots.
type ChapterDiff struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// Diff is the structural difference between two library snapshots.
type Diff struct {
	// AddedCollections are ids present only in the current snapshot. Their
	// chapters are implied and do not reappear under Chapters.
	AddedCollections []string `json:"added_collections,omitempty"`
	// RemovedCollections are ids present only in the previous snapshot.
	RemovedCollections []string `json:"removed_collections,omitempty"`
	// Chapters holds per-collection chapter changes for ids present in both
	// snapshots; collections with no chapter change are omitted.
	Chapters map[string]ChapterDiff `json:"chapters,omitempty"`
}

// Empty reports whether the diff carries no change at all.
func (d Diff) Empty() bool {
	return len(d.AddedCollections) == 0 &&
		len(d.RemovedCollections) == 0 &&
		len(d.Chapters) == 0
}

// Reconcile computes the structural difference between two snapshots. It is
// pure and deterministic: all slices are sorted, Reconcile(s, s) is empty
// for every s, and swapping the arguments swaps added and removed.
func Reconcile(previous, current Snapshot) Diff {
	var diff Diff

	for id := range current {
		if _, ok := previous[id]; !ok {
			diff.AddedCollections = append(diff.AddedCollections, id)
		}
	}
	for id, prev := range previous {
		curr, ok := current[id]
		if !ok {
			diff.RemovedCollections = append(diff.RemovedCollections, id)
			continue
		}
		cd := ChapterDiff{
			Added:   missingFrom(prev.CBZFiles, curr.CBZFiles),
			Removed: missingFrom(curr.CBZFiles, prev.CBZFiles),
		}
		if len(cd.Added) == 0 && len(cd.Removed) == 0 {
			continue
		}
		if diff.Chapters == nil {
			diff.Chapters = make(map[string]ChapterDiff)
		}
		diff.Chapters[id] = cd
	}

	slices.Sort(diff.AddedCollections)
	slices.Sort(diff.RemovedCollections)
	return diff
}

// missingFrom returns the elements of b that are not in a, sorted.
func missingFrom(a, b []string) []string {
	var out []string
	for _, s := range b {
		if !slices.Contains(a, s) {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
