package ports

import "github.com/access-ci/nvport/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// applying defaults and environment overrides.
	Load(cwd string) (*domain.Config, error)
}
