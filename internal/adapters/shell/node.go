package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runit/internal/adapters/logger"
	"go.trai.ch/runit/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "adapter.dispatcher"

func init() {
	graft.Register(graft.Node[ports.Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Dispatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(log), nil
		},
	})
}
