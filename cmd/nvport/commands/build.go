package commands

import (
	"github.com/spf13/cobra"

	"github.com/access-ci/nvport/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the full workflow: fetch, install, addon, portable image, verify, test, package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, _ := cmd.Flags().GetString("release")
			pluginDir, _ := cmd.Flags().GetString("plugin-dir")
			skipTest, _ := cmd.Flags().GetBool("skip-test")
			return c.emit(cmd, c.app.Build(cmd.Context(), app.BuildOptions{
				Version:   version,
				PluginDir: pluginDir,
				SkipTest:  skipTest,
			}))
		},
	}
	cmd.Flags().StringP("release", "r", "", "Release version to build against (default: latest stable)")
	cmd.Flags().StringP("plugin-dir", "p", "", "Addon plugin source directory (default: download the upstream source)")
	cmd.Flags().Bool("skip-test", false, "Skip the functional-execution test step")
	return cmd
}
