package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/core/ports"
)

const NodeID graft.ID = "adapter.notify"

func init() {
	graft.Register(graft.Node[*Hub]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Hub, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHub(lg), nil
		},
	})
}
