// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger is the application-wide logging abstraction.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, walking wrapped causes where available.
	Error(err error)

	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
}
