package proc

import (
	"context"

	"github.com/access-ci/nvport/internal/adapters/logger"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.launcher"

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
