package ports

import "go.trai.ch/runit/internal/core/domain"

// ConfigLoader defines the interface for loading per-project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration in dir. A missing file yields the zero config.
	Load(dir string) (*domain.ProjectConfig, error)
}
