package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/core/domain"
)

func TestModel_WatchStart(t *testing.T) {
	m := NewModel()

	m.Update(MsgWatchStart{Root: "/library", Collections: 7})

	assert.Equal(t, "/library", m.Root)
	assert.Equal(t, 7, m.Collections)
}

func TestModel_OpLifecycle(t *testing.T) {
	m := NewModel()
	start := time.Now()

	m.Update(MsgOpStart{SpanID: "s1", Name: "scan", StartTime: start})

	require.Len(t, m.Ops, 1)
	assert.Equal(t, opRunning, m.Ops[0].Status)

	m.Update(MsgOpComplete{SpanID: "s1", EndTime: start.Add(20 * time.Millisecond)})

	assert.Equal(t, opDone, m.Ops[0].Status)
	assert.Equal(t, 20*time.Millisecond, m.Ops[0].Duration)
}

func TestModel_OpFailure(t *testing.T) {
	m := NewModel()
	start := time.Now()

	m.Update(MsgOpStart{SpanID: "s1", Name: "flush", StartTime: start})
	m.Update(MsgOpComplete{SpanID: "s1", EndTime: start, Err: errors.New("disk full")})

	assert.Equal(t, opFailed, m.Ops[0].Status)
	assert.EqualError(t, m.Ops[0].Err, "disk full")
}

func TestModel_CompleteUnknownSpanIgnored(t *testing.T) {
	m := NewModel()

	m.Update(MsgOpComplete{SpanID: "ghost", EndTime: time.Now()})

	assert.Empty(t, m.Ops)
}

func TestModel_LibraryChangedUpdatesStatsAndFeed(t *testing.T) {
	m := NewModel()

	snap := domain.Snapshot{
		"one-piece": {Path: "/library/one-piece", TotalChapters: 3},
	}
	diff := domain.Diff{
		AddedCollections:   []string{"one-piece"},
		RemovedCollections: []string{"naruto"},
		Chapters: map[string]domain.ChapterDiff{
			"one-piece": {Added: []string{"c001.cbz"}},
		},
	}

	m.Update(MsgLibraryChanged{Snap: snap, Diff: diff})

	assert.Equal(t, 1, m.Collections)
	assert.Equal(t, 3, m.Chapters)
	assert.Equal(t, 1, m.Events)
	require.Len(t, m.Feed, 3)
}

func TestModel_FeedIsBounded(t *testing.T) {
	m := NewModel()

	for i := range maxFeedEntries + 25 {
		m.Update(MsgLibraryChanged{
			Snap: domain.Snapshot{},
			Diff: domain.Diff{
				RemovedCollections: []string{fmt.Sprintf("c%d", i)},
			},
		})
	}

	assert.Len(t, m.Feed, maxFeedEntries)
	// Oldest entries dropped first.
	assert.Equal(t, "collection c25", m.Feed[0].Subject)
}

func TestModel_OpsAreTrimmed(t *testing.T) {
	m := NewModel()
	start := time.Now()

	for i := range 80 {
		id := fmt.Sprintf("s%d", i)
		m.Update(MsgOpStart{SpanID: id, Name: "events", StartTime: start})
		m.Update(MsgOpComplete{SpanID: id, EndTime: start})
	}

	assert.LessOrEqual(t, len(m.Ops), 51)
	assert.Len(t, m.OpMap, len(m.Ops))
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel()

			var msg tea.KeyMsg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)

			assert.True(t, m.Quitting)
			require.NotNil(t, cmd)
		})
	}
}

func TestView_ShowsStatsAndFeed(t *testing.T) {
	m := NewModel()
	m.Update(MsgWatchStart{Root: "/library", Collections: 2})
	m.Update(MsgLibraryChanged{
		Snap: domain.Snapshot{
			"berserk": {Path: "/library/berserk", TotalChapters: 5},
		},
		Diff: domain.Diff{
			Chapters: map[string]domain.ChapterDiff{
				"berserk": {Added: []string{"c364.cbz"}},
			},
		},
	})

	view := m.View()

	assert.Contains(t, view, "/library")
	assert.Contains(t, view, "collections")
	assert.Contains(t, view, "berserk/c364.cbz")
}

func TestView_EmptyState(t *testing.T) {
	m := NewModel()

	view := m.View()

	assert.Contains(t, view, "waiting for changes")
	assert.Contains(t, view, "no changes yet")
}
