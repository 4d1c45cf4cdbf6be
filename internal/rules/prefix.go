package rules

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrMalformedPrefixRule indicates a prefix rule line is not a pair of
// double-quoted tokens.
var ErrMalformedPrefixRule = errors.New("malformed prefix rule")

// prefixRuleRe captures the two quoted halves of a prefix rule line:
//
//	"old\.package\.prefix" "new.package.prefix"
var prefixRuleRe = regexp.MustCompile(`^\s*"([^"]*)"\s+"([^"]*)"\s*$`)

// PrefixRule is one whole-line regex substitution. Unlike Rule it carries
// no identifier-boundary guarantee; the pattern is applied verbatim to
// every line of every file.
type PrefixRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Apply substitutes every match of the pattern in the line.
func (p PrefixRule) Apply(line string) string {
	return p.pattern.ReplaceAllString(line, p.replacement)
}

// LoadPrefixes reads a prefix substitution file into an ordered rule list.
// Rules apply in file order. Blank lines are skipped; a non-blank line
// that is not a quoted pair, or whose pattern does not compile, is fatal.
func LoadPrefixes(path string) ([]PrefixRule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prefix rule file: %w", err)
	}
	defer file.Close()

	var out []PrefixRule

	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := prefixRuleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, ErrMalformedPrefixRule)
		}

		pattern, compileErr := regexp.Compile(m[1])
		if compileErr != nil {
			return nil, fmt.Errorf("%s:%d: compile pattern: %w", path, lineNo, compileErr)
		}

		out = append(out, PrefixRule{pattern: pattern, replacement: m[2]})
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return nil, fmt.Errorf("read prefix rule file: %w", scanErr)
	}

	return out, nil
}
