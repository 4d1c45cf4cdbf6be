package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/nsmigrate/internal/config"
	"github.com/Sumatoshi-tech/nsmigrate/internal/engine"
	"github.com/Sumatoshi-tech/nsmigrate/internal/pipeline"
	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

// runExecutor runs a configured pipeline and writes the summary.
// Injected so command tests can intercept the run.
type runExecutor func(cfg *config.Config, eng pipeline.Engine, progress, out io.Writer) error

// RunCommand holds configuration for the import-aware class migration.
type RunCommand struct {
	commonFlags

	fromPrefixes []string
	toPrefix     string

	exec runExecutor
}

// NewRunCommand creates the class migration command.
func NewRunCommand() *cobra.Command {
	return newRunCommandWithDeps(executePipeline)
}

func newRunCommandWithDeps(exec runExecutor) *cobra.Command {
	rc := &RunCommand{exec: exec}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate class usages and imports to the new namespace",
		Long: "Run the import-aware migration: per file, detect which old-namespace\n" +
			"classes are used, rewrite their occurrences and rebuild the import block.",
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	rc.register(cmd)
	cmd.Flags().StringSliceVar(&rc.fromPrefixes, "from-prefix", nil, "Namespace prefix to migrate away from (repeatable)")
	cmd.Flags().StringVar(&rc.toPrefix, "to-prefix", "", "Namespace prefix to migrate to")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := rc.buildConfigWithPrefixes(cmd)
	if err != nil {
		return err
	}

	if cfg.RulesFile == "" {
		return config.ErrMissingRules
	}

	table, loadErr := rules.Load(cfg.RulesFile, cfg.ToPrefix)
	if loadErr != nil {
		return fmt.Errorf("load rules: %w", loadErr)
	}

	eng := engine.NewClassEngine(table, cfg.FromPrefixes, cfg.ToPrefix)

	return rc.exec(cfg, eng, cmd.ErrOrStderr(), cmd.OutOrStdout())
}

func (rc *RunCommand) buildConfigWithPrefixes(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := rc.buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("from-prefix") {
		cfg.FromPrefixes = rc.fromPrefixes
	}

	if flags.Changed("to-prefix") {
		cfg.ToPrefix = rc.toPrefix
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// executePipeline is the production runExecutor: run the pipeline over
// the configured roots and render the summary.
func executePipeline(cfg *config.Config, eng pipeline.Engine, progress, out io.Writer) error {
	summary, err := pipeline.New(eng, cfg, progress).Run()
	if err != nil {
		return err
	}

	return pipeline.WriteSummary(out, summary, cfg.Format)
}
