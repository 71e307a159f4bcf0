// Package detector picks a rendering mode from the runtime environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// RenderMode selects how watch progress is presented.
type RenderMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto RenderMode = iota
	// ModeDashboard uses the interactive terminal dashboard.
	ModeDashboard
	// ModePlain uses plain line-oriented output for CI and pipes.
	ModePlain
)

// Detect returns the render mode suggested by the environment: the
// dashboard only when stdout is a terminal and no CI variable is set.
func Detect() RenderMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	inCI := ci == "true" || ci == "1"

	if !isTTY || inCI {
		return ModePlain
	}
	return ModeDashboard
}

// Resolve applies the user's --output flag on top of detection.
// Accepted values are "auto", "dashboard", "plain" and "ci"; anything
// else falls back to the detected mode.
func Resolve(detected RenderMode, flag string) RenderMode {
	switch flag {
	case "dashboard", "tui":
		return ModeDashboard
	case "plain", "ci":
		return ModePlain
	default:
		return detected
	}
}
