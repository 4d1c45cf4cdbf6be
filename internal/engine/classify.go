// Package engine implements the two-pass scan and rewrite algorithm that
// migrates one file at a time from an old namespace to a new one.
//
// Pass 1 (Scan) finds which old-namespace simple names are actually used
// in body code, gated on their namespace root appearing in an import
// statement. Pass 2 (Rewrite) rebuilds the import block and substitutes
// identifier occurrences. Both passes work on plain text lines; the
// engine has no understanding of the host language beyond the import
// statement shape.
package engine

import "regexp"

// Import statement shapes. The captured group is the imported
// fully qualified name, wildcard imports included.
var (
	importRe       = regexp.MustCompile(`^\s*import\s+([a-zA-Z0-9.*]+);`)
	staticImportRe = regexp.MustCompile(`^\s*import\s+static\s+([a-zA-Z0-9.*]+);`)
)

type lineKind int

const (
	kindBody lineKind = iota
	kindImport
	kindStaticImport
)

// classify buckets a line as an import, a static import, or body text.
// For plain imports the imported name is returned alongside the kind.
func classify(line string) (lineKind, string) {
	if m := importRe.FindStringSubmatch(line); m != nil {
		return kindImport, m[1]
	}

	if staticImportRe.MatchString(line) {
		return kindStaticImport, ""
	}

	return kindBody, ""
}
