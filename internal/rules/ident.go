package rules

import "strings"

// Ident matches whole-identifier occurrences of a name inside a line.
// A match requires a non-identifier character or the line edge on both
// sides, so OriginalClass never matches inside MyOwnOriginalClass or
// OriginalClassExtended. The same predicate gates the scan and rewrite
// passes so the two can never disagree on what counts as a boundary.
type Ident struct {
	name string
}

// NewIdent builds a matcher for name.
func NewIdent(name string) Ident {
	return Ident{name: name}
}

// FoundIn reports whether the line contains the identifier as a whole word.
func (id Ident) FoundIn(line string) bool {
	for from := 0; ; {
		idx := strings.Index(line[from:], id.name)
		if idx < 0 {
			return false
		}

		start := from + idx
		if id.bounded(line, start) {
			return true
		}

		from = start + 1
	}
}

// Replace substitutes every whole-word occurrence of the identifier.
// Non-matching occurrences (substrings of longer identifiers) are kept.
func (id Ident) Replace(line, replacement string) string {
	var out strings.Builder

	from := 0
	for {
		idx := strings.Index(line[from:], id.name)
		if idx < 0 {
			break
		}

		start := from + idx
		end := start + len(id.name)

		if id.bounded(line, start) {
			out.WriteString(line[from:start])
			out.WriteString(replacement)
		} else {
			out.WriteString(line[from:end])
		}

		from = end
	}

	if from == 0 {
		return line
	}

	out.WriteString(line[from:])

	return out.String()
}

func (id Ident) bounded(line string, start int) bool {
	end := start + len(id.name)

	if start > 0 && isWordByte(line[start-1]) {
		return false
	}

	if end < len(line) && isWordByte(line[end]) {
		return false
	}

	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
