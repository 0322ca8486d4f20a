package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download an NVDA release installer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, _ := cmd.Flags().GetString("release")
			return c.emit(cmd, c.app.FetchRelease(cmd.Context(), version))
		},
	}
	cmd.Flags().StringP("release", "r", "", "Release version to fetch (default: latest stable)")
	return cmd
}

func (c *CLI) newFetchPluginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-plugin",
		Short: "Download the automation addon source from its upstream repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.emit(cmd, c.app.FetchPlugin(cmd.Context()))
		},
	}
}
