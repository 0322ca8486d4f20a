package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <installer.exe>",
		Short: "Install NVDA system-wide from a downloaded installer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(cmd, c.app.Install(cmd.Context(), args[0]))
		},
	}
}

func (c *CLI) newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Write the default NVDA settings into the system installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.emit(cmd, c.app.Configure(cmd.Context()))
		},
	}
}
