// Package rules loads substitution rule tables for the migration engine.
//
// A rule file is line oriented. Each non-blank line carries two
// whitespace-separated fully qualified names: the old one, anchored on the
// ${fromprefix} placeholder, and its replacement, anchored on ${toprefix}:
//
//	${fromprefix}.exception.MathArithmeticException ${toprefix}.exception.MathRuntimeException
//
// The table is built once at startup and is read-only for the rest of the
// run.
package rules

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	// FromPlaceholder anchors the old namespace prefix in rule files.
	FromPlaceholder = "${fromprefix}"
	// ToPlaceholder anchors the new namespace prefix in rule files.
	ToPlaceholder = "${toprefix}"

	ruleTokenCount = 2
)

// ErrMalformedRule indicates a rule line did not split into exactly two tokens.
var ErrMalformedRule = errors.New("malformed substitution rule")

// Rule maps one old fully qualified class name to its replacement.
type Rule struct {
	// SimpleName is the final segment of the old name.
	SimpleName string
	// NamespaceRoot is the dotted path between the from-prefix and the
	// simple name. Empty for classes that sit directly under the prefix.
	NamespaceRoot string
	// Replacement is the new fully qualified name with ${toprefix} expanded.
	Replacement string
}

// NewSimpleName returns the final segment of the replacement name.
func (r Rule) NewSimpleName() string {
	return r.Replacement[strings.LastIndex(r.Replacement, ".")+1:]
}

// ImportLine renders the import statement for the replacement class.
func (r Rule) ImportLine() string {
	return "import " + r.Replacement + ";"
}

// Table holds substitution rules keyed by old simple name.
type Table struct {
	rules map[string]Rule
}

// Load reads a rule file and builds the table. toPrefix replaces the
// ${toprefix} placeholder on the replacement side. Blank lines are
// skipped; any other line that does not hold exactly two tokens fails
// with ErrMalformedRule so a partial table is never applied.
func Load(path, toPrefix string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule file: %w", err)
	}
	defer file.Close()

	table := &Table{rules: make(map[string]Rule)}

	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rule, parseErr := parseRule(line, toPrefix)
		if parseErr != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, parseErr)
		}

		table.rules[rule.SimpleName] = rule
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return nil, fmt.Errorf("read rule file: %w", scanErr)
	}

	return table, nil
}

func parseRule(line, toPrefix string) (Rule, error) {
	tokens := strings.Fields(line)
	if len(tokens) != ruleTokenCount {
		return Rule{}, fmt.Errorf("%w: want %d tokens, got %d", ErrMalformedRule, ruleTokenCount, len(tokens))
	}

	oldName := tokens[0]
	newName := strings.ReplaceAll(tokens[1], ToPlaceholder, toPrefix)

	lastDot := strings.LastIndex(oldName, ".")
	simple := oldName[lastDot+1:]

	root := ""
	if start := len(FromPlaceholder) + 1; lastDot > start {
		root = oldName[start:lastDot]
	}

	return Rule{
		SimpleName:    simple,
		NamespaceRoot: root,
		Replacement:   newName,
	}, nil
}

// Lookup returns the rule for an old simple name.
func (t *Table) Lookup(simpleName string) (Rule, bool) {
	rule, ok := t.rules[simpleName]

	return rule, ok
}

// Len reports the number of loaded rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// All returns the rules sorted by old simple name, so scans and rewrites
// are deterministic regardless of map iteration order.
func (t *Table) All() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for _, rule := range t.rules {
		out = append(out, rule)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SimpleName < out[j].SimpleName
	})

	return out
}
