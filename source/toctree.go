package source

import (
	"regexp"
	"strings"
	"unicode"
)

// TocEntry is one "label <target>" line of a reStructuredText toctree.
type TocEntry struct {
	Label  string
	Target string
}

// External reports whether the entry points outside the documentation set.
func (e TocEntry) External() bool {
	return strings.HasPrefix(e.Target, "http")
}

// space matches Unicode whitespace, which RE2's \s does not.
const space = `[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]`

var tocEntryRe = regexp.MustCompile(`^` + space + `{4}([^<]+?)` + space + `*<([^>]+)>`)

// ParseToctree returns the entries of every ".. toctree::" block in index.
//
// Option lines (":maxdepth: 1") are skipped. The first blank line in a block
// is tolerated; once an entry or a blank line has been seen, the next blank
// line ends the block. Lines that are not indented "label <target>" pairs
// are ignored.
func ParseToctree(index string) []TocEntry {
	var entries []TocEntry
	capture, seenEntry := false, false
	for _, raw := range strings.Split(index, "\n") {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, ".. toctree::") {
			capture, seenEntry = true, false
			continue
		}
		if !capture || strings.HasPrefix(stripped, ":") {
			continue
		}
		if stripped == "" {
			if seenEntry {
				capture, seenEntry = false, false
			} else {
				seenEntry = true
			}
			continue
		}

		m := tocEntryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		seenEntry = true
		entries = append(entries, TocEntry{
			Label:  strings.TrimSpace(m[1]),
			Target: m[2],
		})
	}
	return entries
}
