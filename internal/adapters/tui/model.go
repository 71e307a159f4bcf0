// Package tui provides the interactive terminal dashboard for watch mode.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tana/internal/ui/style"
)

const maxFeedEntries = 200

// opStatus is the lifecycle state of a traced operation.
type opStatus int

const (
	opRunning opStatus = iota
	opDone
	opFailed
)

// opEntry tracks one traced operation shown in the activity pane.
type opEntry struct {
	SpanID   string
	Name     string
	Status   opStatus
	Started  time.Time
	Duration time.Duration
	Err      error
}

// feedEntry is one line in the change feed.
type feedEntry struct {
	At      time.Time
	Added   bool
	Subject string
}

// Model is the Bubble Tea state for the watch dashboard.
type Model struct {
	Root        string
	Collections int
	Chapters    int

	Ops    []*opEntry
	OpMap  map[string]*opEntry
	Feed   []feedEntry
	Events int

	Width    int
	Height   int
	Quitting bool
}

// NewModel returns an empty dashboard model.
func NewModel() *Model {
	return &Model{
		OpMap: make(map[string]*opEntry),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case MsgWatchStart:
		m.Root = msg.Root
		m.Collections = msg.Collections

	case MsgOpStart:
		entry := &opEntry{
			SpanID:  msg.SpanID,
			Name:    msg.Name,
			Status:  opRunning,
			Started: msg.StartTime,
		}
		m.Ops = append(m.Ops, entry)
		m.OpMap[msg.SpanID] = entry
		m.trimOps()

	case MsgOpLog:
		// The dashboard shows op outcomes, not their raw output.

	case MsgOpComplete:
		if entry, ok := m.OpMap[msg.SpanID]; ok {
			entry.Duration = msg.EndTime.Sub(entry.Started)
			if msg.Err != nil {
				entry.Status = opFailed
				entry.Err = msg.Err
			} else {
				entry.Status = opDone
			}
		}

	case MsgLibraryChanged:
		m.Collections = len(msg.Snap)
		m.Chapters = msg.Snap.TotalChapters()
		m.Events++

		now := time.Now()
		for _, id := range msg.Diff.AddedCollections {
			chapters := 0
			if rec, ok := msg.Snap[id]; ok {
				chapters = rec.TotalChapters
			}
			m.pushFeed(feedEntry{
				At:      now,
				Added:   true,
				Subject: fmt.Sprintf("collection %s (%d chapters)", id, chapters),
			})
		}
		for _, id := range msg.Diff.RemovedCollections {
			m.pushFeed(feedEntry{At: now, Subject: "collection " + id})
		}
		for id, ch := range msg.Diff.Chapters {
			for _, name := range ch.Added {
				m.pushFeed(feedEntry{At: now, Added: true, Subject: id + "/" + name})
			}
			for _, name := range ch.Removed {
				m.pushFeed(feedEntry{At: now, Subject: id + "/" + name})
			}
		}
	}

	return m, nil
}

func (m *Model) pushFeed(e feedEntry) {
	m.Feed = append(m.Feed, e)
	if len(m.Feed) > maxFeedEntries {
		m.Feed = m.Feed[len(m.Feed)-maxFeedEntries:]
	}
}

// trimOps drops finished operations beyond the visible history so the
// activity pane does not grow unbounded during long watches.
func (m *Model) trimOps() {
	const keep = 50
	over := len(m.Ops) - keep
	if over <= 0 {
		return
	}

	trimmed := make([]*opEntry, 0, keep)
	for _, entry := range m.Ops {
		if over > 0 && entry.Status != opRunning {
			delete(m.OpMap, entry.SpanID)
			over--
			continue
		}
		trimmed = append(trimmed, entry)
	}
	m.Ops = trimmed
}

func (e *opEntry) statusIcon() string {
	switch e.Status {
	case opDone:
		return opDoneStyle.Render(style.Check)
	case opFailed:
		return opErrorStyle.Render(style.Cross)
	default:
		return opRunningStyle.Render(style.Dot)
	}
}
