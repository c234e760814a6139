package docinventory

import (
	"regexp"
	"strings"
)

// Dialect identifies a heading markup convention.
type Dialect string

// Dialect constants.
const (
	// DialectUnderline marks headings with a following line of repeated
	// punctuation, as in reStructuredText.
	DialectUnderline Dialect = "underline"

	// DialectHash marks headings with leading '#' characters, as in Markdown.
	DialectHash Dialect = "hash"
)

// Heading text is letters, digits, underscores, whitespace and "-/+", with
// letters, digits and whitespace taken from the whole of Unicode.
var underlineHeadingRe = regexp.MustCompile(`(?m)^([\p{L}\p{N}_\-/\s\v\p{Z}\x{1c}-\x{1f}\x{85}\+]+)\n[=~` + "`" + `^"'\-]+\n`)

// FirstHeading returns the first heading of text in the given dialect.
// It returns false for an unknown dialect.
func FirstHeading(text string, dialect Dialect) (string, bool) {
	switch dialect {
	case DialectUnderline:
		return FirstHeadingUnderline(text)
	case DialectHash:
		return FirstHeadingHash(text)
	default:
		return "", false
	}
}

// FirstHeadingUnderline returns the trimmed text of the first line that is
// immediately followed by an underline of markup characters.
func FirstHeadingUnderline(text string) (string, bool) {
	m := underlineHeadingRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// FirstHeadingHash returns the first line starting with '#', with leading
// '#' characters and surrounding whitespace removed.
func FirstHeadingHash(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "# ")), true
		}
	}
	return "", false
}
