package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tana/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Indigo).
			Foreground(style.White)

	statStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statValueStyle = lipgloss.NewStyle().
			Foreground(style.White).
			Bold(true)

	opRunningStyle = lipgloss.NewStyle().
			Foreground(style.Indigo).
			Bold(true)

	opDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	opErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	addedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	removedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	timestampStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
