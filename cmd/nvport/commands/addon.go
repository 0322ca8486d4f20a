package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildAddonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-addon <plugin-dir>",
		Short: "Package the automation addon from its plugin source tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(cmd, c.app.BuildAddon(cmd.Context(), args[0]))
		},
	}
}

func (c *CLI) newInstallAddonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install-addon <addon-file>",
		Short: "Install a packaged addon into the system installation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(cmd, c.app.InstallAddon(cmd.Context(), args[0]))
		},
	}
}
