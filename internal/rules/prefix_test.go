package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

func writePrefixFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "packages.subst")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadPrefixes(t *testing.T) {
	t.Parallel()

	path := writePrefixFile(t, ""+
		"\"org\\.apache\\.commons\\.math[34]\" \"org.hipparchus\"\n"+
		"\n"+
		"\"commons-math3\" \"hipparchus-core\"\n")

	loaded, err := rules.LoadPrefixes(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t,
		"import org.hipparchus.complex.Complex;",
		loaded[0].Apply("import org.apache.commons.math3.complex.Complex;"))
	assert.Equal(t,
		"import org.hipparchus.complex.Complex;",
		loaded[0].Apply("import org.apache.commons.math4.complex.Complex;"))
	assert.Equal(t,
		"<artifactId>hipparchus-core</artifactId>",
		loaded[1].Apply("<artifactId>commons-math3</artifactId>"))
}

func TestLoadPrefixesAppliesInFileOrder(t *testing.T) {
	t.Parallel()

	path := writePrefixFile(t, ""+
		"\"alpha\" \"beta\"\n"+
		"\"beta\" \"gamma\"\n")

	loaded, err := rules.LoadPrefixes(path)
	require.NoError(t, err)

	line := "alpha"
	for _, rule := range loaded {
		line = rule.Apply(line)
	}

	// First rule output feeds the second rule.
	assert.Equal(t, "gamma", line)
}

func TestLoadPrefixesMalformedLine(t *testing.T) {
	t.Parallel()

	path := writePrefixFile(t, "\"only-one-token\"\n")

	_, err := rules.LoadPrefixes(path)
	require.ErrorIs(t, err, rules.ErrMalformedPrefixRule)
}

func TestLoadPrefixesUnquotedLine(t *testing.T) {
	t.Parallel()

	path := writePrefixFile(t, "old new\n")

	_, err := rules.LoadPrefixes(path)
	require.ErrorIs(t, err, rules.ErrMalformedPrefixRule)
}

func TestLoadPrefixesBadPattern(t *testing.T) {
	t.Parallel()

	path := writePrefixFile(t, "\"un(closed\" \"x\"\n")

	_, err := rules.LoadPrefixes(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, rules.ErrMalformedPrefixRule)
}
