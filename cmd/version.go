package cmd

import (
	"fmt"

	"clipdir/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCommand displays build information; --short prints only the version.
func newVersionCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Display the version of clipdir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
	c.Flags().BoolP("short", "s", false, "Print the version number only")
	return c
}
