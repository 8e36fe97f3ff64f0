package stubforge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cull/internal/core/ports"
)

// StoreNodeID is the unique identifier for the stub store Graft node.
const StoreNodeID graft.ID = "adapter.stub_store"

func init() {
	graft.Register(graft.Node[ports.StubStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StubStore, error) {
			return NewStore(), nil
		},
	})
}
