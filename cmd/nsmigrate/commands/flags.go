// Package commands implements CLI command handlers for nsmigrate.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/nsmigrate/internal/config"
)

// commonFlags are the pipeline flags shared by the run and prefix
// commands. Flag values override config-file and environment settings
// only when the flag was set on the command line.
type commonFlags struct {
	configPath string

	dirs       []string
	ignoreDirs []string
	extensions []string
	rulesFile  string

	nosave   bool
	dryRun   bool
	showDiff bool
	verbose  bool
	noColor  bool
	format   string
}

func (cf *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cf.configPath, "config", "", "Config file path (default: .nsmigrate.yaml in CWD or $HOME)")

	cmd.Flags().StringSliceVar(&cf.dirs, "dir", nil, "Root directory to process (repeatable)")
	cmd.Flags().StringSliceVar(&cf.ignoreDirs, "ignore", nil, "Directory name to skip (repeatable)")
	cmd.Flags().StringSliceVar(&cf.extensions, "ext", nil, "File name suffix to include (repeatable)")
	cmd.Flags().StringVar(&cf.rulesFile, "rules", "", "Substitution rule file path")

	cmd.Flags().BoolVar(&cf.nosave, "nosave", false, "Do not keep .orig backups of changed files")
	cmd.Flags().BoolVar(&cf.dryRun, "dry-run", false, "Report changed paths without writing anything")
	cmd.Flags().BoolVar(&cf.showDiff, "diff", false, "Print line diffs for changed files (dry-run)")
	cmd.Flags().BoolVarP(&cf.verbose, "verbose", "v", false, "Per-file progress output")
	cmd.Flags().BoolVar(&cf.noColor, "no-color", false, "Disable colored progress output")
	cmd.Flags().StringVar(&cf.format, "format", "", "Summary format: table, json, yaml")
}

// buildConfig loads the layered configuration and applies explicitly set
// flags on top of it. Validation is left to the caller so command-specific
// overrides can land first.
func (cf *commonFlags) buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cf.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("dir") {
		cfg.Roots = cf.dirs
	}

	if flags.Changed("ignore") {
		cfg.IgnoreDirs = cf.ignoreDirs
	}

	if flags.Changed("ext") {
		cfg.Extensions = cf.extensions
	}

	if flags.Changed("rules") {
		cfg.RulesFile = cf.rulesFile
	}

	if flags.Changed("nosave") {
		cfg.Backup = !cf.nosave
	}

	if flags.Changed("dry-run") {
		cfg.DryRun = cf.dryRun
	}

	if flags.Changed("diff") {
		cfg.ShowDiff = cf.showDiff
	}

	if flags.Changed("verbose") {
		cfg.Verbose = cf.verbose
	}

	if flags.Changed("format") {
		cfg.Format = cf.format
	}

	if cf.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	return cfg, nil
}
