package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Loader{Logger: lg}, nil
		},
	})
}
