// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tana/internal/adapters/config"
	_ "go.trai.ch/tana/internal/adapters/logger"
	_ "go.trai.ch/tana/internal/adapters/notify"
	// Register the app node.
	_ "go.trai.ch/tana/internal/app"
)
