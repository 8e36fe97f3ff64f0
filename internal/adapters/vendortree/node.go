package vendortree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cull/internal/core/ports"
)

// NodeID is the unique identifier for the vendor tree Graft node.
const NodeID graft.ID = "adapter.vendor_tree"

func init() {
	graft.Register(graft.Node[ports.VendorTree]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VendorTree, error) {
			return NewTree(), nil
		},
	})
}
