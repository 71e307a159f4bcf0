package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tana/internal/core/domain"
)

// Renderer wraps the dashboard Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a dashboard renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnWatchStart forwards the watch announcement to the dashboard.
func (r *Renderer) OnWatchStart(root string, collections int) {
	r.program.Send(MsgWatchStart{
		Root:        root,
		Collections: collections,
	})
}

// OnOpStart forwards operation starts to the dashboard.
func (r *Renderer) OnOpStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgOpStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnOpLog forwards operation output to the dashboard.
func (r *Renderer) OnOpLog(spanID string, data []byte) {
	r.program.Send(MsgOpLog{
		SpanID: spanID,
		Data:   data,
	})
}

// OnOpComplete forwards operation completions to the dashboard.
func (r *Renderer) OnOpComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgOpComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// OnLibraryChanged forwards diffs to the dashboard.
func (r *Renderer) OnLibraryChanged(snap domain.Snapshot, diff domain.Diff) {
	r.program.Send(MsgLibraryChanged{
		Snap: snap,
		Diff: diff,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
