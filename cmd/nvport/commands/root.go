// Package commands implements the CLI commands for the portable image builder.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/access-ci/nvport/internal/app"
	"github.com/access-ci/nvport/internal/build"
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
)

// Application is the subset of the app layer the CLI drives.
type Application interface {
	FetchRelease(ctx context.Context, version string) domain.OperationResult
	FetchPlugin(ctx context.Context) domain.OperationResult
	Install(ctx context.Context, installerPath string) domain.OperationResult
	Configure(ctx context.Context) domain.OperationResult
	BuildAddon(ctx context.Context, pluginDir string) domain.OperationResult
	InstallAddon(ctx context.Context, addonPath string) domain.OperationResult
	CreatePortable(ctx context.Context) domain.OperationResult
	VerifyImage(ctx context.Context, imagePath string) domain.OperationResult
	TestImage(ctx context.Context, imagePath string) domain.OperationResult
	Package(ctx context.Context, imagePath, label string) domain.OperationResult
	Build(ctx context.Context, opts app.BuildOptions) domain.OperationResult
}

// CLI represents the command line interface for nvport.
type CLI struct {
	app     Application
	cfg     *domain.Config
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app, config and logger.
func New(a Application, cfg *domain.Config, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nvport",
		Short:         "Build and test portable NVDA images for assistive-technology CI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Emit the operation result as JSON on stdout")
	rootCmd.PersistentFlags().String("config", "", "Directory containing nvport.yaml (default: working directory)")

	c := &CLI{
		app:     a,
		cfg:     cfg,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newFetchPluginCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newConfigureCmd())
	rootCmd.AddCommand(c.newBuildAddonCmd())
	rootCmd.AddCommand(c.newInstallAddonCmd())
	rootCmd.AddCommand(c.newCreatePortableCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// emit renders an operation result and maps failure to a CLI error so the
// process exits non-zero.
func (c *CLI) emit(cmd *cobra.Command, res domain.OperationResult) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return zerr.Wrap(err, "encoding result")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, d := range res.Diagnostics {
			c.logger.Warn(d)
		}
		if res.Success {
			c.logger.Info(res.Message)
		} else {
			c.logger.Error(zerr.New(res.Err))
		}
	}

	if !res.Success {
		return domain.ErrOperationFailed
	}
	return nil
}

// imageArg resolves the optional image directory argument, defaulting to
// the configured portable dir.
func (c *CLI) imageArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.cfg.PortableDir
}
