// Package config holds the immutable run configuration for nsmigrate.
// It is built once by the command layer (defaults, optional config file,
// environment, then flags) and passed by pointer to the pipeline; nothing
// mutates it after Validate.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Default configuration values, matching the migration this tool was
// built for.
var (
	DefaultFromPrefixes = []string{"org.apache.commons.math3", "org.apache.commons.math4"}
	DefaultIgnoreDirs   = []string{".git", "target"}
	DefaultExtensions   = []string{".java"}
)

// DefaultToPrefix is the namespace prefix imports are migrated to.
const DefaultToPrefix = "org.hipparchus"

// DefaultFormat is the summary output format.
const DefaultFormat = "table"

// Sentinel errors for configuration validation.
var (
	ErrNoRoots         = errors.New("no root directory given")
	ErrInvalidRoot     = errors.New("root is not a directory")
	ErrNoExtensions    = errors.New("no file extensions configured")
	ErrNoFromPrefixes  = errors.New("no from-prefix configured")
	ErrMissingToPrefix = errors.New("no to-prefix configured")
	ErrMissingRules    = errors.New("no rule file configured")
)

// Config holds one migration run's settings.
type Config struct {
	// Roots are the directory trees to process, in order.
	Roots []string `mapstructure:"roots"`
	// IgnoreDirs are directory names pruned during the walk.
	IgnoreDirs []string `mapstructure:"ignore_dirs"`
	// Extensions are filename suffixes selecting files to process.
	Extensions []string `mapstructure:"extensions"`

	// FromPrefixes are the namespace prefixes being migrated away from.
	FromPrefixes []string `mapstructure:"from_prefixes"`
	// ToPrefix is the namespace prefix replacing them.
	ToPrefix string `mapstructure:"to_prefix"`
	// RulesFile is the substitution rule file path.
	RulesFile string `mapstructure:"rules_file"`

	// Backup controls whether originals are kept as <path>.orig.
	Backup bool `mapstructure:"backup"`
	// DryRun reports would-be changes without writing anything.
	DryRun bool `mapstructure:"dry_run"`
	// ShowDiff prints per-file line diffs for changed files in dry-run.
	ShowDiff bool `mapstructure:"show_diff"`
	// Verbose enables per-file progress output.
	Verbose bool `mapstructure:"verbose"`
	// Format selects the summary output format: table, json or yaml.
	Format string `mapstructure:"format"`
}

// Validate checks the settings shared by both engines. Rule file
// presence is checked per command, since the two modes read different
// rule formats.
func (c *Config) Validate() error {
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}

	for _, root := range c.Roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
		}
	}

	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}

	if len(c.FromPrefixes) == 0 {
		return ErrNoFromPrefixes
	}

	if c.ToPrefix == "" {
		return ErrMissingToPrefix
	}

	return nil
}
