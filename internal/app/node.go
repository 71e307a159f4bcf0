package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tana/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/tana/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/tana/internal/adapters/notify" //nolint:depguard // Wired in app layer
	"go.trai.ch/tana/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			notify.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			hub, err := graft.Dep[*notify.Hub](ctx)
			if err != nil {
				return nil, err
			}

			return New(lg, loader, hub), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: lg,
			}, nil
		},
	})
}
