package release

import (
	"context"

	"github.com/access-ci/nvport/internal/adapters/config"
	"github.com/access-ci/nvport/internal/adapters/logger"
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.release"

func init() {
	graft.Register(graft.Node[ports.ReleaseSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(cfg.ReleasesURL, log), nil
		},
	})
}
