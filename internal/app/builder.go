package app

import (
	"go.trai.ch/tana/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
