/*
File    : psl/eval/runtime.go

Wires *Evaluator to builtin.Runtime, the narrow callback surface EVAL,
INPUT and the list-mutating built-ins (APPEND/INSERT/REMOVE) need.
Grounded on go-mix/std/builtins.go's Runtime implementation on its own
Evaluator, adapted to this package's identifier-rebinding approach to
list mutation.
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

// EvalSource lexes and parses source as a single expression and
// evaluates it in scope, backing the EVAL built-in per §4.4.
func (e *Evaluator) EvalSource(source string, scope *env.Environment) (value.Value, error) {
	expr, err := parser.ParseExpression(source)
	if err != nil {
		return nil, err
	}
	return e.evalExprResult(expr, scope)
}

// WritePrompt writes s straight to e.Writer, bypassing an environment's
// buffered Output, so INPUT's prompt is visible before ReadLine blocks
// rather than only after the surrounding statement or program flushes.
func (e *Evaluator) WritePrompt(s string) {
	if e.Writer != nil {
		fmt.Fprint(e.Writer, s)
	}
}

// ReadLine reads one line from e.Reader with the trailing newline
// stripped, backing the INPUT built-in per §6.
func (e *Evaluator) ReadLine() (string, error) {
	if e.Reader == nil {
		return "", fmt.Errorf("no input reader configured")
	}
	line, err := e.Reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// RebindIdentifier implements the outer-name rebinding APPEND/INSERT/
// REMOVE use instead of in-place mutation: node must be the
// *parser.Identifier naming the list argument the built-in was called
// with (not an arbitrary index expression — a call like
// `APPEND(x[1], v)` is rejected, matching §4.4's "target must be an
// identifier bound to a list").
func (e *Evaluator) RebindIdentifier(node any, scope *env.Environment, v value.Value) error {
	ident, ok := node.(*parser.Identifier)
	if !ok {
		return fmt.Errorf("mutation target must be a plain variable name")
	}
	scope.Bind(ident.Name, v)
	return nil
}
