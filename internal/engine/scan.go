package engine

import (
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/nsmigrate/internal/rules"
)

// Findings is the outcome of the usage scan over one file. It is built
// once by Scan and read by Rewrite; nothing mutates it in between.
type Findings struct {
	importedRoots map[string]bool
	renames       map[string]string // old simple name -> new simple name
}

// Empty reports whether the scan found no class usages to migrate.
// An empty result short-circuits the file: no rewrite, no write-back.
func (f Findings) Empty() bool {
	return len(f.renames) == 0
}

// NewName returns the replacement simple name recorded for an old one.
func (f Findings) NewName(oldSimpleName string) (string, bool) {
	name, ok := f.renames[oldSimpleName]

	return name, ok
}

// oldNames returns the discovered old simple names in sorted order.
func (f Findings) oldNames() []string {
	names := make([]string, 0, len(f.renames))
	for name := range f.renames {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Scan is pass 1. It walks the file's lines, records which old namespace
// roots are imported, and collects every rule whose simple name occurs as
// a whole identifier in a body line of a file that imports its root.
// Static imports contribute nothing to usage detection.
func Scan(lines []string, table *rules.Table, fromPrefixes []string) Findings {
	findings := Findings{
		importedRoots: make(map[string]bool),
		renames:       make(map[string]string),
	}

	for _, line := range lines {
		kind, imported := classify(line)

		switch kind {
		case kindImport:
			root, ok := namespaceRoot(imported, fromPrefixes)
			if ok {
				findings.importedRoots[root] = true
			}
		case kindStaticImport:
			// Not used for usage detection.
		case kindBody:
			scanBodyLine(line, table, &findings)
		}
	}

	return findings
}

func scanBodyLine(line string, table *rules.Table, findings *Findings) {
	for _, rule := range table.All() {
		if !findings.importedRoots[rule.NamespaceRoot] {
			continue
		}

		if !strings.Contains(line, rule.SimpleName) {
			continue
		}

		if rules.NewIdent(rule.SimpleName).FoundIn(line) {
			findings.renames[rule.SimpleName] = rule.NewSimpleName()
		}
	}
}

// namespaceRoot extracts the dotted path between the first matching
// from-prefix and the final name segment of an imported class. The
// second return is false when no prefix matches.
func namespaceRoot(imported string, fromPrefixes []string) (string, bool) {
	for _, prefix := range fromPrefixes {
		idx := strings.Index(imported, prefix)
		if idx < 0 {
			continue
		}

		start := idx + len(prefix) + 1
		lastDot := strings.LastIndex(imported, ".")

		if lastDot <= start {
			// Class sits directly under the prefix.
			return "", true
		}

		return imported[start:lastDot], true
	}

	return "", false
}
