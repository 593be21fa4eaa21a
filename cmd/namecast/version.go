// Package main provides the namecast CLI application.
package main

import (
	"fmt"

	"github.com/namecast/namecast"
	"github.com/spf13/cobra"
)

// newVersionCmd reports detailed version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", namecast.Name, namecast.FullVersion())
			if namecast.GitCommit != "unknown" && namecast.GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", namecast.GitCommit)
			}
			if namecast.BuildDate != "unknown" && namecast.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", namecast.BuildDate)
			}
		},
	}
}
