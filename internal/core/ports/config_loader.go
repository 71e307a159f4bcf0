package ports

import "go.trai.ch/tana/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers tana.yaml walking up from cwd and returns the settings
	// with defaults applied. A missing config file is not an error; the
	// returned settings then carry defaults only.
	Load(cwd string) (domain.Settings, error)
}
