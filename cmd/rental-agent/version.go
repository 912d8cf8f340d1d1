package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"version": build.Version,
					"commit":  build.Commit,
					"branch":  build.Branch,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), build.String())
			return nil
		},
	}
}
