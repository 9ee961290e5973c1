package source

import (
	"fmt"
	"strconv"
	"strings"
)

// CreateSmartError turns a terse internal message (e.g. "Undefined
// variable: x") into a PSLError with both an enriched, user-friendly
// message and, heuristically, a source location — pattern-matching the
// message the way original_source's PseudoError::format_message and
// SourceTracker::create_smart_error do, minus the regex dependency
// (these patterns are all literal prefixes or "[N]" substrings, so
// strings.HasPrefix/strings.Cut carry the same matches).
func (t *Tracker) CreateSmartError(message string) *PSLError {
	if rest, ok := strings.CutPrefix(message, "Undefined variable: "); ok {
		name := rest
		if line, col, found := t.FindLine(name, name+" <-"); found {
			return t.CreateLocatedError(enrich(message), line, col+1)
		}
		pos := t.findBarePosition(message)
		return t.CreateError(enrich(message), pos)
	}

	if strings.Contains(message, "List index out of bounds") ||
		strings.Contains(message, "String index out of bounds") {
		if idx, ok := extractOutOfBoundsIndex(message); ok {
			pattern := fmt.Sprintf("[%d]", idx)
			if line, col, found := t.FindLine(pattern, ""); found {
				return t.CreateLocatedError(enrich(message), line, col+1)
			}
		}
		pos := t.findBarePosition(message)
		return t.CreateError(enrich(message), pos)
	}

	if strings.HasPrefix(message, "Division by zero") || strings.HasPrefix(message, "Modulo by zero") {
		pos := t.findBarePosition(message)
		return t.CreateError(enrich(message), pos)
	}

	if rest, ok := strings.CutPrefix(message, "Procedure not found: "); ok {
		name := strings.Trim(rest, "'")
		if line, col, found := t.FindLine(name, ""); found {
			return t.CreateLocatedError(enrich(message), line, col+1)
		}
	}

	pos := t.findBarePosition(message)
	return t.CreateError(enrich(message), pos)
}

// enrich rewrites a terse internal message into the friendlier phrasing
// original_source's format_message produces, e.g. "Undefined variable: x"
// becomes "Undefined variable: 'x' is not defined in the current scope".
func enrich(message string) string {
	switch {
	case strings.HasPrefix(message, "Undefined variable: "):
		name := strings.TrimPrefix(message, "Undefined variable: ")
		return fmt.Sprintf("Undefined variable: '%s' is not defined in the current scope", name)

	case strings.HasPrefix(message, "List index out of bounds"):
		if idx, size, ok := extractBoundsPair(message); ok {
			return fmt.Sprintf("List index out of bounds: index %d exceeds list length %d", idx, size)
		}
		return message

	case strings.HasPrefix(message, "String index out of bounds"):
		if idx, size, ok := extractBoundsPair(message); ok {
			return fmt.Sprintf("String index out of bounds: index %d exceeds string length %d", idx, size)
		}
		return message

	case strings.HasPrefix(message, "Division by zero"):
		return "Division by zero error: cannot divide by zero"

	case strings.HasPrefix(message, "Modulo by zero"):
		return "Modulo by zero error: cannot perform modulo operation with zero divisor"

	case strings.HasPrefix(message, "Procedure not found: "):
		name := strings.TrimPrefix(message, "Procedure not found: ")
		return fmt.Sprintf("Procedure not found: '%s' is not defined. Check for typos or ensure it's defined before use.", name)

	case strings.HasPrefix(message, "Stack overflow"):
		return "Stack overflow: maximum recursion depth exceeded. Check for infinite recursion in your code."

	case strings.HasPrefix(message, "Maximum loop iterations exceeded"):
		return "Maximum loop iterations exceeded: your loop may be infinite. Check your loop condition."

	case strings.HasPrefix(message, "Cannot convert string to number"):
		return "Cannot convert string to number: the string does not represent a valid number"

	case strings.HasPrefix(message, "Condition must be a boolean"):
		return "Type error: condition must be a boolean expression"

	case strings.HasPrefix(message, "REPEAT count must be an integer"):
		return "Type error: REPEAT count must be an integer value"

	default:
		return message
	}
}

// extractOutOfBoundsIndex pulls the offending index out of a message of
// the form "... out of bounds: N (size: M)".
func extractOutOfBoundsIndex(message string) (int, bool) {
	idx, _, ok := extractBoundsPair(message)
	return idx, ok
}

func extractBoundsPair(message string) (index, size int, ok bool) {
	rest, found := afterColonSpace(message)
	if !found {
		return 0, 0, false
	}
	open := strings.Index(rest, "(size: ")
	indexPart := rest
	if open >= 0 {
		indexPart = strings.TrimSpace(rest[:open])
	}
	idx, err := strconv.Atoi(strings.TrimSpace(indexPart))
	if err != nil {
		return 0, 0, false
	}
	if open < 0 {
		return idx, 0, true
	}
	sizePart := rest[open+len("(size: "):]
	sizePart = strings.TrimSuffix(strings.TrimSpace(sizePart), ")")
	size, err = strconv.Atoi(sizePart)
	if err != nil {
		return idx, 0, true
	}
	return idx, size, true
}

func afterColonSpace(message string) (string, bool) {
	i := strings.Index(message, ": ")
	if i < 0 {
		return "", false
	}
	return message[i+2:], true
}

// findBarePosition is the last-resort heuristic: scan for the operator
// or bracket most likely responsible, falling back to offset 0.
func (t *Tracker) findBarePosition(message string) int {
	switch {
	case strings.Contains(message, "Division by zero"), strings.Contains(message, "Modulo by zero"):
		op := "/"
		if strings.Contains(message, "Modulo") {
			op = "MOD"
		}
		for lineNum, content := range t.linesCopy() {
			if idx := strings.Index(content, op); idx >= 0 {
				return t.offsetOf(lineNum+1, idx)
			}
		}
	case strings.Contains(message, "out of bounds"):
		if idx, ok := extractOutOfBoundsIndex(message); ok {
			pattern := fmt.Sprintf("[%d]", idx)
			for lineNum, content := range t.linesCopy() {
				if col := strings.Index(content, pattern); col >= 0 {
					return t.offsetOf(lineNum+1, col+1)
				}
			}
		}
	}
	return 0
}

func (t *Tracker) linesCopy() []string {
	return t.lines
}

// offsetOf converts a 1-based line and 0-based column back into a byte
// offset, the inverse of Locate, so findBarePosition's heuristics can
// reuse CreateError.
func (t *Tracker) offsetOf(line, column int) int {
	offset := 0
	for i := 0; i < line-1 && i < len(t.lines); i++ {
		offset += len(t.lines[i]) + 1
	}
	return offset + column
}
