package app

import (
	"go.trai.ch/cull/internal/core/ports"
)

// Components contains the initialized application components. This struct
// provides controlled access to the components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
