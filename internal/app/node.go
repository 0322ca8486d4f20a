package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/access-ci/nvport/internal/adapters/archive"  //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/netprobe" //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/plugin"   //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/proc"     //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/release"  //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/access-ci/nvport/internal/engine/pipeline"
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
			config.NodeID,
			logger.NodeID,
			pipeline.NodeID,
			proc.NodeID,
			fs.ProberNodeID,
			fs.ValidatorNodeID,
			fs.HasherNodeID,
			fs.WriterNodeID,
			netprobe.NodeID,
			manifest.NodeID,
			release.NodeID,
			plugin.NodeID,
			archive.NodeID,
			store.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	pipe, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}
	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}
	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}
	netProbe, err := graft.Dep[ports.NetProbe](ctx)
	if err != nil {
		return nil, err
	}
	validator, err := graft.Dep[ports.ImageValidator](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}
	releases, err := graft.Dep[ports.ReleaseSource](ctx)
	if err != nil {
		return nil, err
	}
	plugins, err := graft.Dep[ports.PluginSource](ctx)
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
	artifacts, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Config:    cfg,
		Logger:    log,
		Pipeline:  pipe,
		Launcher:  launcher,
		Prober:    prober,
		Net:       netProbe,
		Validator: validator,
		Manifests: manifests,
		Releases:  releases,
		Plugins:   plugins,
		Archiver:  archiver,
		Writer:    writer,
		Store:     artifacts,
		Hasher:    hasher,
	}), nil
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
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Config: cfg,
	}, nil
}
