// Package main provides the entry point for the nsmigrate CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/nsmigrate/cmd/nsmigrate/commands"
	"github.com/Sumatoshi-tech/nsmigrate/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nsmigrate",
		Short: "nsmigrate - source tree namespace migration tool",
		Long: `nsmigrate rewrites source trees during a library namespace migration.

Commands:
  run       Import-aware class migration (two-pass scan and rewrite)
  prefix    Whole-line regex substitution from a rule file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands.
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewPrefixCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "nsmigrate %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
