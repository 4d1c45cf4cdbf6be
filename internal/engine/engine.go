package engine

import "github.com/Sumatoshi-tech/nsmigrate/internal/rules"

// ClassEngine applies a substitution rule table to one file at a time
// using the import-aware two-pass algorithm. It holds only immutable
// configuration and is safe to reuse across files.
type ClassEngine struct {
	table        *rules.Table
	fromPrefixes []string
	toPrefix     string
}

// NewClassEngine builds an engine over a loaded rule table.
func NewClassEngine(table *rules.Table, fromPrefixes []string, toPrefix string) *ClassEngine {
	return &ClassEngine{
		table:        table,
		fromPrefixes: fromPrefixes,
		toPrefix:     toPrefix,
	}
}

// Apply runs both passes over a file's lines. When the scan finds no
// migratable class usage the input slice is returned unchanged.
func (e *ClassEngine) Apply(lines []string) []string {
	findings := Scan(lines, e.table, e.fromPrefixes)
	if findings.Empty() {
		return lines
	}

	return Rewrite(lines, findings, e.table, e.fromPrefixes, e.toPrefix)
}

// PrefixEngine applies ordered whole-line regex substitutions to every
// line, with no import awareness or identifier boundary checks. It is
// the coarse companion of ClassEngine, used for package prefixes and
// build files.
type PrefixEngine struct {
	rules []rules.PrefixRule
}

// NewPrefixEngine builds an engine over an ordered prefix rule list.
func NewPrefixEngine(prefixRules []rules.PrefixRule) *PrefixEngine {
	return &PrefixEngine{rules: prefixRules}
}

// Apply substitutes every rule on every line, in rule order.
func (e *PrefixEngine) Apply(lines []string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		for _, rule := range e.rules {
			line = rule.Apply(line)
		}

		out[i] = line
	}

	return out
}
