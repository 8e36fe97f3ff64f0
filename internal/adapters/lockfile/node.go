package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cull/internal/core/ports"
)

// NodeID is the unique identifier for the lock repository Graft node.
const NodeID graft.ID = "adapter.lock_repository"

func init() {
	graft.Register(graft.Node[ports.LockRepository]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockRepository, error) {
			return NewRepository(), nil
		},
	})
}
