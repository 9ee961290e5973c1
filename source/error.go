package source

import "fmt"

// Location anchors a PSLError to a specific point in the original source:
// a 1-based line and column plus the literal text of that line, so the
// error can be rendered with a caret underneath the offending column.
type Location struct {
	Line        int
	Column      int
	LineContent string
}

// PSLError is the error type eval.Evaluator reports for runtime
// failures; parse failures are reported as *parser.ParseError instead,
// and the lexer never fails. Location is nil for errors that have no meaningful
// source position (none exist in practice, but the zero value keeps
// Render safe to call unconditionally).
type PSLError struct {
	Message  string
	Location *Location
}

// NewError builds a PSLError with no location attached.
func NewError(format string, args ...interface{}) *PSLError {
	return &PSLError{Message: fmt.Sprintf(format, args...)}
}

// WithLocation attaches a Location to an existing error and returns it,
// for callers that discover the position after the message was formed.
func (e *PSLError) WithLocation(line, column int, lineContent string) *PSLError {
	e.Location = &Location{Line: line, Column: column, LineContent: lineContent}
	return e
}

// Error implements the error interface by rendering the diagnostic.
func (e *PSLError) Error() string {
	return e.Render()
}

// Render formats the error the way spec.md §4.5 requires:
//
//	Line L, Column C: <message>
//	<source line>
//	   ^
//
// When no Location is attached, only the bare message is returned.
func (e *PSLError) Render() string {
	if e.Location == nil {
		return e.Message
	}
	content := e.Location.LineContent
	if len(content) == 0 {
		content = "[empty line]"
	}
	caret := make([]byte, e.Location.Column) // Column-1 spaces then a caret
	for i := range caret {
		caret[i] = ' '
	}
	caret[len(caret)-1] = '^'
	return fmt.Sprintf("Line %d, Column %d: %s\n%s\n%s",
		e.Location.Line, e.Location.Column, e.Message, content, string(caret))
}

// CreateError builds a located PSLError from a raw byte offset into the
// tracked source, the way go-mix's parser attaches a token's Line/Column
// to a parse failure.
func (t *Tracker) CreateError(message string, offset int) *PSLError {
	line, column := t.Locate(offset)
	return &PSLError{
		Message:  message,
		Location: &Location{Line: line, Column: column, LineContent: t.Line(line)},
	}
}

// CreateLocatedError builds a located PSLError directly from an already
// known 1-based line/column, for callers (CreateSmartError's FindLine
// matches) that know a position rather than a raw offset.
func (t *Tracker) CreateLocatedError(message string, line, column int) *PSLError {
	return &PSLError{
		Message:  message,
		Location: &Location{Line: line, Column: column, LineContent: t.Line(line)},
	}
}
