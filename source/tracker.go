/*
File    : psl/source/tracker.go

Package source maps byte offsets in a PSL source file to line/column
positions and renders diagnostics that pinpoint where a failure occurred.
It is built once per run from the raw source text and used by the
evaluator to locate and render runtime errors.
*/
package source

import "strings"

// Tracker holds the original source text and a pre-split slice of its
// lines, so that offset→position and line→content lookups never re-scan
// the whole file.
type Tracker struct {
	text  string
	lines []string
}

// NewTracker builds a Tracker over src. Lines are split on '\n'; a
// trailing newline does not produce a spurious empty final line beyond
// what strings.Split already yields, matching how most editors report
// line counts.
func NewTracker(src string) *Tracker {
	return &Tracker{
		text:  src,
		lines: strings.Split(src, "\n"),
	}
}

// Source returns the full original source text.
func (t *Tracker) Source() string {
	return t.text
}

// LineCount returns the number of lines in the tracked source.
func (t *Tracker) LineCount() int {
	return len(t.lines)
}

// Line returns the 1-indexed line's content, or "" if line is out of
// range.
func (t *Tracker) Line(line int) string {
	if line < 1 || line > len(t.lines) {
		return ""
	}
	return t.lines[line-1]
}

// Locate converts a 0-based byte offset into the source into a 1-based
// (line, column) pair. An offset past the end of the source clamps to
// the final position.
func (t *Tracker) Locate(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.text) {
		offset = len(t.text)
	}
	line = 1
	column = 1
	for i := 0; i < offset && i < len(t.text); i++ {
		if t.text[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// FindLine scans every line for the first occurrence of needle, skipping
// lines that start (ignoring leading whitespace) with a COMMENT keyword.
// When exclude is non-empty, a line containing exclude is skipped too —
// used to keep a variable's own definition line from shadowing the site
// of its undefined use. Returns (line, column, true) 1-based/0-based
// respectively (column is a 0-based byte offset within the line, matching
// the convention create_smart_error's callers expect) or false if no
// line matched.
func (t *Tracker) FindLine(needle string, exclude string) (line, column int, ok bool) {
	for i, content := range t.lines {
		trimmed := strings.TrimSpace(content)
		if strings.HasPrefix(trimmed, "COMMENT") {
			continue
		}
		if exclude != "" && strings.Contains(content, exclude) {
			continue
		}
		if idx := strings.Index(content, needle); idx >= 0 {
			return i + 1, idx, true
		}
	}
	return 0, 0, false
}
