package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed. Path holds the
	// destination and OldPath the source when the watcher paired both sides;
	// unpaired renames are delivered as OpRemove instead.
	OpRename
)

// String returns a human-readable name for the operation.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	// For renames it is the destination path.
	Path string
	// OldPath is the source path of a rename, empty otherwise.
	OldPath string
	// Operation is the type of change that occurred.
	Operation WatchOp
	// IsDir reports whether the path is a directory. For removed paths the
	// watcher cannot stat and leaves it false.
	IsDir bool
}

// ActionKind is the semantic meaning of a classified filesystem event.
type ActionKind uint8

const (
	// ActionNone means the event is irrelevant to the index.
	ActionNone ActionKind = iota
	// ActionCollectionUpsert means a collection directory appeared or
	// changed and must be re-derived from disk.
	ActionCollectionUpsert
	// ActionCollectionRemove means a collection directory is gone.
	ActionCollectionRemove
	// ActionCollectionRename means a collection directory was renamed in
	// place; the record migrates to the new id.
	ActionCollectionRename
	// ActionChapterChange means an archive inside a collection changed; the
	// owning collection must be re-derived from disk.
	ActionChapterChange
)

// Action is the result of classifying a filesystem event against the
// library root.
type Action struct {
	Kind ActionKind
	// Collection is the affected collection id (the new id for renames).
	Collection string
	// OldCollection is the previous id for renames, empty otherwise.
	OldCollection string
	// Second holds a second affected collection id when a single rename
	// touches two collections (a chapter moved between them).
	Second string
}

// depth returns how many levels below root the path sits: 1 for a direct
// child, 2 for a grandchild, 0 for root itself or anything outside it.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// collectionOf returns the id of the collection owning a second-level path.
func collectionOf(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// Classify maps a raw filesystem event to an index action. Only first-level
// directories (collections) and second-level archive files (chapters) are
// relevant; everything else yields ActionNone. A first-level removal whose
// name carries the chapter extension cannot be attributed to a collection
// and is reported as ErrClassifyAmbiguous.
func Classify(root string, ev WatchEvent) (Action, error) {
	if ev.Operation == OpRename {
		return classifyRename(root, ev)
	}

	switch depth(root, ev.Path) {
	case 1:
		return classifyCollection(ev)
	case 2:
		return classifyChapter(ev.Path, ev.IsDir), nil
	default:
		return Action{}, nil
	}
}

func classifyCollection(ev WatchEvent) (Action, error) {
	id := filepath.Base(ev.Path)
	switch ev.Operation {
	case OpCreate, OpWrite:
		if !ev.IsDir {
			return Action{}, nil
		}
		return Action{Kind: ActionCollectionUpsert, Collection: id}, nil
	case OpRemove:
		// The path is gone so it cannot be stat'ed. A name ending in the
		// chapter extension was almost certainly a stray first-level
		// archive, not a collection directory.
		if strings.HasSuffix(id, ChapterExtension) {
			return Action{}, zerr.With(ErrClassifyAmbiguous, "path", ev.Path)
		}
		return Action{Kind: ActionCollectionRemove, Collection: id}, nil
	default:
		return Action{}, nil
	}
}

func classifyChapter(path string, isDir bool) Action {
	if isDir || !strings.HasSuffix(filepath.Base(path), ChapterExtension) {
		return Action{}
	}
	return Action{Kind: ActionChapterChange, Collection: collectionOf(path)}
}

// classifyRename resolves a paired rename from whichever side is under the
// root. A rename crossing levels degrades to the action of the qualifying
// side; when neither side qualifies the event is irrelevant.
func classifyRename(root string, ev WatchEvent) (Action, error) {
	srcDepth := depth(root, ev.OldPath)
	dstDepth := depth(root, ev.Path)

	switch {
	case srcDepth == 1 && dstDepth == 1:
		if !ev.IsDir {
			return Action{}, nil
		}
		return Action{
			Kind:          ActionCollectionRename,
			Collection:    filepath.Base(ev.Path),
			OldCollection: filepath.Base(ev.OldPath),
		}, nil
	case srcDepth == 1:
		// Moved out of the library entirely.
		return Action{Kind: ActionCollectionRemove, Collection: filepath.Base(ev.OldPath)}, nil
	case dstDepth == 1:
		// Moved into the library from elsewhere.
		if !ev.IsDir {
			return Action{}, nil
		}
		return Action{Kind: ActionCollectionUpsert, Collection: filepath.Base(ev.Path)}, nil
	}

	// Chapter-level renames re-derive every touched collection.
	var act Action
	if dstDepth == 2 {
		act = classifyChapter(ev.Path, ev.IsDir)
	}
	if srcDepth == 2 {
		src := classifyChapter(ev.OldPath, ev.IsDir)
		switch {
		case src.Kind == ActionNone:
		case act.Kind == ActionNone:
			act = src
		case src.Collection != act.Collection:
			act.Second = src.Collection
		}
	}
	return act, nil
}
