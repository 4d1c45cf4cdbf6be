package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/nsmigrate/internal/config"
	"github.com/Sumatoshi-tech/nsmigrate/internal/engine"
	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

// PrefixCommand holds configuration for the coarse whole-line
// substitution mode.
type PrefixCommand struct {
	commonFlags

	exec runExecutor
}

// NewPrefixCommand creates the prefix substitution command.
func NewPrefixCommand() *cobra.Command {
	return newPrefixCommandWithDeps(executePipeline)
}

func newPrefixCommandWithDeps(exec runExecutor) *cobra.Command {
	pc := &PrefixCommand{exec: exec}

	cmd := &cobra.Command{
		Use:   "prefix",
		Short: "Apply whole-line regex substitutions from a rule file",
		Long: "Apply ordered regex substitution rules to every line of every\n" +
			"matching file. No import awareness, no identifier boundary checks;\n" +
			"meant for package prefixes and build files.",
		Args: cobra.NoArgs,
		RunE: pc.run,
	}

	pc.register(cmd)

	return cmd
}

func (pc *PrefixCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := pc.buildConfig(cmd)
	if err != nil {
		return err
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return validateErr
	}

	if cfg.RulesFile == "" {
		return config.ErrMissingRules
	}

	prefixRules, loadErr := rules.LoadPrefixes(cfg.RulesFile)
	if loadErr != nil {
		return fmt.Errorf("load rules: %w", loadErr)
	}

	eng := engine.NewPrefixEngine(prefixRules)

	return pc.exec(cfg, eng, cmd.ErrOrStderr(), cmd.OutOrStdout())
}
