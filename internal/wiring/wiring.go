// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/access-ci/nvport/internal/adapters/archive"
	_ "github.com/access-ci/nvport/internal/adapters/config"
	_ "github.com/access-ci/nvport/internal/adapters/fs"
	_ "github.com/access-ci/nvport/internal/adapters/logger"
	_ "github.com/access-ci/nvport/internal/adapters/manifest"
	_ "github.com/access-ci/nvport/internal/adapters/netprobe"
	_ "github.com/access-ci/nvport/internal/adapters/plugin"
	_ "github.com/access-ci/nvport/internal/adapters/proc"
	_ "github.com/access-ci/nvport/internal/adapters/release"
	_ "github.com/access-ci/nvport/internal/adapters/store"
	// Register app and engine nodes.
	_ "github.com/access-ci/nvport/internal/app"
	_ "github.com/access-ci/nvport/internal/engine/pipeline"
)
