package plugin

import (
	"context"

	"github.com/access-ci/nvport/internal/adapters/archive"
	"github.com/access-ci/nvport/internal/adapters/config"
	"github.com/access-ci/nvport/internal/adapters/fs"
	"github.com/access-ci/nvport/internal/adapters/logger"
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.plugin"

func init() {
	graft.Register(graft.Node[ports.PluginSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, archive.NodeID, fs.WriterNodeID},
		Run: func(ctx context.Context) (ports.PluginSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.TreeWriter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(cfg.PluginURL, archiver, writer, log), nil
		},
	})
}
