package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCreatePortableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-portable",
		Short: "Create the portable image from the system installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.emit(cmd, c.app.CreatePortable(cmd.Context()))
		},
	}
}

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [image-dir]",
		Short: "Validate the portable image layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(cmd, c.app.VerifyImage(cmd.Context(), c.imageArg(args)))
		},
	}
}

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test [image-dir]",
		Short: "Launch the portable image and probe its automation endpoint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.emit(cmd, c.app.TestImage(cmd.Context(), c.imageArg(args)))
		},
	}
}

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package [image-dir]",
		Short: "Archive the portable image into a zip under the work dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			return c.emit(cmd, c.app.Package(cmd.Context(), c.imageArg(args), label))
		},
	}
	cmd.Flags().StringP("label", "l", "", "Archive base name (default: image directory name)")
	return cmd
}
