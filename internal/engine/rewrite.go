package engine

import (
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

// Rewrite is pass 2. It produces a fresh line slice:
//
//   - At the first import line, one import per discovered class is
//     inserted, sorted lexicographically.
//   - Import lines mentioning a from-prefix or the to-prefix are dropped;
//     the insert above replaces them, so stale and duplicate imports
//     cannot survive.
//   - Static import lines referencing a from-prefix have every prefix
//     occurrence replaced with the to-prefix.
//   - Body lines get whole-identifier substitution for every discovered
//     class, all occurrences, case-sensitive.
//
// The input slice is never mutated. Rewriting an already-migrated file is
// a no-op because Scan finds nothing once the old imports are gone.
func Rewrite(lines []string, findings Findings, table *rules.Table, fromPrefixes []string, toPrefix string) []string {
	if findings.Empty() {
		return lines
	}

	out := make([]string, 0, len(lines)+len(findings.renames))
	firstImport := true

	for _, line := range lines {
		kind, _ := classify(line)

		switch kind {
		case kindImport:
			if firstImport {
				out = append(out, newImportLines(findings, table)...)
				firstImport = false
			}

			if !containsAnyPrefix(line, fromPrefixes) && !strings.Contains(line, toPrefix) {
				out = append(out, line)
			}
		case kindStaticImport:
			out = append(out, rewriteStaticImport(line, fromPrefixes, toPrefix))
		case kindBody:
			out = append(out, rewriteBodyLine(line, findings))
		}
	}

	return out
}

// newImportLines renders the sorted import statements for every
// discovered replacement class.
func newImportLines(findings Findings, table *rules.Table) []string {
	imports := make([]string, 0, len(findings.renames))

	for _, oldName := range findings.oldNames() {
		rule, ok := table.Lookup(oldName)
		if !ok {
			continue
		}

		imports = append(imports, rule.ImportLine())
	}

	sort.Strings(imports)

	return imports
}

func rewriteStaticImport(line string, fromPrefixes []string, toPrefix string) string {
	if !containsAnyPrefix(line, fromPrefixes) || strings.Contains(line, toPrefix) {
		return line
	}

	for _, prefix := range fromPrefixes {
		line = strings.ReplaceAll(line, prefix, toPrefix)
	}

	return line
}

func rewriteBodyLine(line string, findings Findings) string {
	for _, oldName := range findings.oldNames() {
		if !strings.Contains(line, oldName) {
			continue
		}

		newName, _ := findings.NewName(oldName)
		line = rules.NewIdent(oldName).Replace(line, newName)
	}

	return line
}

func containsAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.Contains(line, prefix) {
			return true
		}
	}

	return false
}
