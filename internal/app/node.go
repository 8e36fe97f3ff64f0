package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cull/internal/adapters/config"
	"go.trai.ch/cull/internal/adapters/lockfile"
	"go.trai.ch/cull/internal/adapters/logger"
	"go.trai.ch/cull/internal/adapters/stubforge"
	"go.trai.ch/cull/internal/adapters/telemetry"
	"go.trai.ch/cull/internal/adapters/vendortree"
	"go.trai.ch/cull/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			stubforge.StoreNodeID,
			vendortree.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			repo, err := graft.Dep[ports.LockRepository](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.StubStore](ctx)
			if err != nil {
				return nil, err
			}

			tree, err := graft.Dep[ports.VendorTree](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, repo, store, tree, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
