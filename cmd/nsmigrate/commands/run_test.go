package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/nsmigrate/internal/config"
	"github.com/Sumatoshi-tech/nsmigrate/internal/pipeline"
	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

const sampleSource = `package org.example;

import org.apache.commons.math3.exception.MathArithmeticException;

public class Demo {
    void fail() throws MathArithmeticException {
    }
}
`

const migratedSource = `package org.example;

import org.hipparchus.exception.MathRuntimeException;

public class Demo {
    void fail() throws MathRuntimeException {
    }
}
`

const sampleRules = "${fromprefix}.exception.MathArithmeticException ${toprefix}.exception.MathRuntimeException\n"

func writeFixture(t *testing.T) (root, rulesFile string) {
	t.Helper()

	root = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Demo.java"), []byte(sampleSource), 0o644))

	rulesFile = filepath.Join(t.TempDir(), "classes.subst")
	require.NoError(t, os.WriteFile(rulesFile, []byte(sampleRules), 0o644))

	return root, rulesFile
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRunCommandMigratesTree(t *testing.T) {
	t.Parallel()

	root, rulesFile := writeFixture(t)

	stdout, _, err := execute(t, NewRunCommand(),
		"--dir", root, "--rules", rulesFile, "--format", "json")
	require.NoError(t, err)

	got, readErr := os.ReadFile(filepath.Join(root, "src", "Demo.java"))
	require.NoError(t, readErr)
	assert.Equal(t, migratedSource, string(got))

	// Backup kept by default.
	backup, backupErr := os.ReadFile(filepath.Join(root, "src", "Demo.java.orig"))
	require.NoError(t, backupErr)
	assert.Equal(t, sampleSource, string(backup))

	var summary pipeline.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 1, summary.Scanned)
	assert.Equal(t, 1, summary.Changed)
}

func TestRunCommandSecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	root, rulesFile := writeFixture(t)

	_, _, err := execute(t, NewRunCommand(),
		"--dir", root, "--rules", rulesFile, "--nosave", "--format", "json")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewRunCommand(),
		"--dir", root, "--rules", rulesFile, "--nosave", "--format", "json")
	require.NoError(t, err)

	var summary pipeline.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 0, summary.Changed)
	assert.Equal(t, 1, summary.Unchanged)
}

func TestRunCommandDryRun(t *testing.T) {
	t.Parallel()

	root, rulesFile := writeFixture(t)

	_, stderr, err := execute(t, NewRunCommand(),
		"--dir", root, "--rules", rulesFile, "--dry-run", "--format", "json")
	require.NoError(t, err)

	// Changed path reported, disk untouched.
	assert.Contains(t, stderr, filepath.Join(root, "src", "Demo.java"))

	got, readErr := os.ReadFile(filepath.Join(root, "src", "Demo.java"))
	require.NoError(t, readErr)
	assert.Equal(t, sampleSource, string(got))
	assert.NoFileExists(t, filepath.Join(root, "src", "Demo.java.orig"))
}

func TestRunCommandMissingRules(t *testing.T) {
	t.Parallel()

	root, _ := writeFixture(t)

	_, _, err := execute(t, NewRunCommand(), "--dir", root)
	require.ErrorIs(t, err, config.ErrMissingRules)
}

func TestRunCommandInvalidDir(t *testing.T) {
	t.Parallel()

	_, rulesFile := writeFixture(t)

	_, _, err := execute(t, NewRunCommand(),
		"--dir", filepath.Join(t.TempDir(), "absent"), "--rules", rulesFile)
	require.ErrorIs(t, err, config.ErrInvalidRoot)
}

func TestRunCommandMalformedRules(t *testing.T) {
	t.Parallel()

	root, _ := writeFixture(t)

	bad := filepath.Join(t.TempDir(), "bad.subst")
	require.NoError(t, os.WriteFile(bad, []byte("only-one-token\n"), 0o644))

	_, _, err := execute(t, NewRunCommand(), "--dir", root, "--rules", bad)
	require.ErrorIs(t, err, rules.ErrMalformedRule)
}

func TestRunCommandPrefixOverrides(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := "import com.legacy.exception.OldError;\n\nOldError e;\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "A.java"), []byte(source), 0o644))

	rulesFile := filepath.Join(t.TempDir(), "classes.subst")
	require.NoError(t, os.WriteFile(rulesFile,
		[]byte("${fromprefix}.exception.OldError ${toprefix}.exception.NewError\n"), 0o644))

	var captured *config.Config

	cmd := newRunCommandWithDeps(func(cfg *config.Config, eng pipeline.Engine, _, _ io.Writer) error {
		captured = cfg

		return nil
	})

	_, _, err := execute(t, cmd,
		"--dir", root, "--rules", rulesFile,
		"--from-prefix", "com.legacy", "--to-prefix", "io.modern")
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"com.legacy"}, captured.FromPrefixes)
	assert.Equal(t, "io.modern", captured.ToPrefix)
}
