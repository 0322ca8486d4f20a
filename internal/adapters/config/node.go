package config

import (
	"context"
	"os"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	LoaderNodeID graft.ID = "adapter.config.loader"
	NodeID       graft.ID = "adapter.config"
)

// DirEnv overrides the directory the config is loaded from. The CLI sets
// it from the --config flag.
const DirEnv = "NVPORT_CONFIG_DIR"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			dir := os.Getenv(DirEnv)
			if dir == "" {
				dir, err = os.Getwd()
				if err != nil {
					return nil, err
				}
			}
			return loader.Load(dir)
		},
	})
}
