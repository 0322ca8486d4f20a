// Package main is the entry point for the nvport tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/access-ci/nvport/cmd/nvport/commands"
	"github.com/access-ci/nvport/internal/adapters/config"
	"github.com/access-ci/nvport/internal/adapters/logger"
	"github.com/access-ci/nvport/internal/app"
	"github.com/access-ci/nvport/internal/core/domain"
	_ "github.com/access-ci/nvport/internal/wiring"
)

// runLogName is the append-only run log file under the work dir.
const runLogName = "nvport.log"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The config node reads its directory from the environment, so the
	// flag has to be applied before the graph executes.
	if dir := configDirFlag(args); dir != "" {
		_ = os.Setenv(config.DirEnv, dir)
	}

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	if l, ok := components.Logger.(*logger.Logger); ok {
		path := filepath.Join(components.Config.WorkDir, runLogName)
		if err := l.AttachFile(path); err != nil {
			l.Error(err)
		}
	}

	cli := commands.New(components.App, components.Config, components.Logger)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, domain.ErrOperationFailed) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}

// configDirFlag extracts the value of --config from raw args without
// running cobra.
func configDirFlag(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
	}
	return ""
}
