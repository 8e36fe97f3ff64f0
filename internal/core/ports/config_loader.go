package ports

import "go.trai.ch/cull/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers cull.yaml from the given working directory upward and
	// returns the resolved configuration.
	Load(cwd string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing the
	// configuration file.
	DiscoverRoot(cwd string) (string, error)
}
